package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "bg-yellow-100 text-yellow-800", StatusColor("Pending"))
	assert.Equal(t, "bg-blue-100 text-blue-800", StatusColor("In Progress"))
	assert.Equal(t, "bg-green-100 text-green-800", StatusColor("Resolved"))
	assert.Equal(t, "bg-gray-100 text-gray-800", StatusColor("Closed"))
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, "bg-red-100 text-red-800", PriorityColor("High"))
	assert.Equal(t, "bg-orange-100 text-orange-800", PriorityColor("Medium"))
	assert.Equal(t, "bg-green-100 text-green-800", PriorityColor("Low"))
	assert.Equal(t, "bg-gray-100 text-gray-800", PriorityColor(""))
}

func TestTitleColor(t *testing.T) {
	assert.Equal(t, "text-green-600", TitleColor("Newcomer"))
	assert.Equal(t, "text-blue-600", TitleColor("Active Contributor"))
	assert.Equal(t, "text-purple-600", TitleColor("Veteran Complainer"))
	assert.Equal(t, "text-gray-600", TitleColor("Complaint Lord"))
}
