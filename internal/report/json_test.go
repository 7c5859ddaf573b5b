package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/marginalia/internal/core/annotation"
)

func TestJSON(t *testing.T) {
	records := storeWith(t,
		annotation.Record{Anchor: 6, Length: 5, Text: "second"},
		annotation.Record{Anchor: 0, Length: 5, Text: "first"},
	)

	doc := JSON(Input{
		Title:   "notes.txt",
		Text:    "hello world",
		Records: records,
		Ratings: []Rating{
			{Index: 0, Length: 5, Color: "#1d9c03", Value: 100},
			{Index: 6, Length: 5, Color: "#123456", Value: -1},
		},
	})

	assert.Equal(t, "notes.txt", doc.Title)

	require.Len(t, doc.Comments, 2)
	assert.Equal(t, "first", doc.Comments[0].Text)
	assert.Equal(t, "hello", doc.Comments[0].Quote)
	assert.Equal(t, 11, doc.Comments[1].End)
	assert.NotEmpty(t, doc.Comments[0].ID)

	require.Len(t, doc.Ratings, 2)
	require.NotNil(t, doc.Ratings[0].Value)
	assert.Equal(t, 100, *doc.Ratings[0].Value)
	assert.Nil(t, doc.Ratings[1].Value)
	assert.Equal(t, "world", doc.Ratings[1].Quote)
}

func TestJSON_EmptyListsNotNull(t *testing.T) {
	doc := JSON(Input{Title: "x"})
	assert.NotNil(t, doc.Comments)
	assert.NotNil(t, doc.Ratings)
}
