package handler

// Display-token mapping for enum values. Pure presentation concern, kept
// out of the domain model.

// StatusColor повертає display-токен для статусу скарги.
func StatusColor(status string) string {
	switch status {
	case "Pending":
		return "bg-yellow-100 text-yellow-800"
	case "In Progress":
		return "bg-blue-100 text-blue-800"
	case "Resolved":
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// PriorityColor повертає display-токен для пріоритету.
func PriorityColor(priority string) string {
	switch priority {
	case "High":
		return "bg-red-100 text-red-800"
	case "Medium":
		return "bg-orange-100 text-orange-800"
	case "Low":
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// TitleColor повертає display-токен для титулу користувача.
func TitleColor(title string) string {
	switch title {
	case "Veteran Complainer":
		return "text-purple-600"
	case "Active Contributor":
		return "text-blue-600"
	case "Newcomer":
		return "text-green-600"
	default:
		return "text-gray-600"
	}
}
