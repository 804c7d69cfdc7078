package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourse_Labels(t *testing.T) {
	c := Course{
		Title:         "Math",
		Code:          "Mh6011",
		CreditHours:   4,
		Description:   "Learn basics of mathematics",
		Prerequisites: "None",
	}

	assert.Equal(t, "Code: Mh6011", c.CodeLabel())
	assert.Equal(t, "Credits: 4", c.CreditsLabel())
	assert.Equal(t, "Description: Learn basics of mathematics", c.DescriptionLabel())
	assert.Equal(t, "Prerequisites: None", c.PrerequisitesLabel())
}

func TestCourse_LabelsKeepWhitespace(t *testing.T) {
	c := Course{Description: " Upgrade you english grammar and learn to speak it. "}
	assert.Equal(t, "Description:  Upgrade you english grammar and learn to speak it. ", c.DescriptionLabel())
}
