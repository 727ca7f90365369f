package constant

import "strings"

const nextStepsFallback = "Consult the framework's documentation for next steps."

const firebaseNextSteps = "1. Make sure you have Firebase CLI installed.\n" +
	"2. In your project, run 'npm install firebase'.\n" +
	"3. In your code, import and initialize Firebase services:\n\n" +
	"```javascript\n" +
	"import { initializeApp } from \"firebase/app\";\n" +
	"import { getFirestore } from \"firebase/firestore\";\n" +
	"import { getAuth } from \"firebase/auth\";\n\n" +
	"const firebaseConfig = { ... }; // Your config\n\n" +
	"const app = initializeApp(firebaseConfig);\n" +
	"const db = getFirestore(app);\n" +
	"const auth = getAuth(app);\n" +
	"```\n\n" +
	"4. For web apps, run:\n   cd %NAME%\n   npm start"

// nextStepsByTemplate holds the canned instructional text per template id.
// %NAME% is substituted with the project's configured name.
var nextStepsByTemplate = map[string]string{
	"react":      "1. cd %NAME%\n2. npm install\n3. npm start",
	"vue":        "1. cd %NAME%\n2. npm install\n3. npm run dev",
	"angular":    "1. cd %NAME%\n2. npm install\n3. ng serve",
	"svelte":     "1. cd %NAME%\n2. npm install\n3. npm run dev",
	"express":    "1. cd %NAME%\n2. npm install\n3. npm run dev",
	"django":     "1. cd %NAME%\n2. pip install -r requirements.txt\n3. python manage.py runserver",
	"docker":     "1. cd %NAME%\n2. docker-compose up --build",
	"terraform":  "1. cd %NAME%\n2. terraform init\n3. terraform apply",
	"postgresql": "1. cd %NAME%\n2. docker-compose up -d\n3. psql -U user -d db_name",
	"mongodb":    "1. cd %NAME%\n2. mongosh --file ./scripts/seed-data.js",
}

// NextSteps resolves the instructional text for a template id, substituting
// the project name. Any id containing "firebase" gets the SDK walkthrough;
// unrecognized ids fall back to a generic message.
func NextSteps(templateId, projectName string) string {
	if projectName == "" {
		projectName = "my-project"
	}

	text, ok := nextStepsByTemplate[templateId]
	if !ok {
		if strings.Contains(templateId, "firebase") {
			text = firebaseNextSteps
		} else {
			return nextStepsFallback
		}
	}
	return strings.ReplaceAll(text, "%NAME%", projectName)
}
