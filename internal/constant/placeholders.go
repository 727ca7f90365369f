package constant

// FieldPlaceholder returns the example text shown for a configuration field.
// A few empathy-map fields vary by template family.
func FieldPlaceholder(field, templateId string) string {
	isReact := templateId == "react"
	switch field {
	case "sees":
		if isReact {
			return "e.g., They see competitors’ sleek UIs..."
		}
		return "e.g., They see complex platforms..."
	case "hears":
		if isReact {
			return "e.g., They hear about slow-loading pages..."
		}
		return "e.g., They hear about data breaches..."
	case "thinksFeels":
		if isReact {
			return "e.g., They think this will be hard to build..."
		}
		return "e.g., They feel limited by existing tools..."
	case "saysDoes":
		if isReact {
			return "e.g., They say they want a simple UI..."
		}
		return "e.g., They say they need a secure backend..."
	case "business":
		return "e.g., To increase market share by 15%"
	case "data":
		return "e.g., To ensure data is encrypted at rest and in transit"
	case "application":
		return "e.g., To build a microservices architecture"
	case "valueStream":
		return "e.g., The customer journey from signup to purchase."
	case "businessCapability":
		return "e.g., Online Payments, Inventory Management."
	case "businessProcess":
		return "e.g., Fulfilling an order, handling a return."
	case "productModel":
		return "e.g., Digital Product Model for our e-commerce platform."
	case "serviceOffering":
		return "e.g., Standard Subscription Service, Premium Support Offering."
	case "informationObject":
		return "e.g., User Data, Financial Records, Order History."
	default:
		return ""
	}
}
