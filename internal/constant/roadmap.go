package constant

// RoadmapPhase is one step of the SAFe implementation roadmap shown as an
// alternative starting point to an empty workspace.
type RoadmapPhase struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	Actions []string `json:"actions"`
	Tip     string   `json:"tip"`
}

var SAFeRoadmap = []RoadmapPhase{
	{Id: "tipping-point", Name: "The Tipping Point", Actions: []string{"Do a SWOT analysis", "Kick-start a presentation"}, Tip: "Establish a sense of urgency by examining market realities."},
	{Id: "coalition", Name: "Create the Coalition", Actions: []string{"Hire the right people", "Train your executive body", "Create a LACE team"}, Tip: "Form a team of visionary leaders to drive the transformation."},
	{Id: "vision", Name: "Create the Guiding Vision", Actions: []string{"Identify value streams", "Create a vision statement", "Communicate the vision"}, Tip: "Arm your change agents with a guiding mission."},
	{Id: "training", Name: "Communicate & Begin Training", Actions: []string{"Provide Agile 101 training", "Host SAFe Executive Workshops"}, Tip: "Start the transformation by enabling your leaders with the right training."},
	{Id: "empower", Name: "Empower Others", Actions: []string{"Train teams in SAFe", "Organize around value streams"}, Tip: "Organize around portfolios, programs, and teams."},
	{Id: "pilot", Name: "Pilot Launch", Actions: []string{"Create a high-level plan", "Hold a mock PI planning session"}, Tip: "Assess value streams and delivery pipelines to gain visible short-term wins."},
	{Id: "execute", Name: "Execute", Actions: []string{"Pre-PI planning", "Mid-PI review", "PI planning", "Inspect & Adapt"}, Tip: "Inspect and adapt, coach, and learn."},
	{Id: "expand", Name: "Extend and Expand", Actions: []string{"Bring in Lean portfolio management", "Offer leadership refreshers"}, Tip: "Nurture and grow the Agile culture by expanding into new areas."},
}
