package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div><p>hello <b>world</b></p></div>`,
	))
	require.NoError(t, err)

	require.Equal(t, "hello world", GetText(doc.Find("div").Nodes[0]))
}

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  hello \n\t world  ", "hello world"},
		{"one two", "one two"},
		{"plain", "plain"},
		{"\n\n", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}

func TestSelectOptions(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<select name="TERMYEAR">
			<option value="202509">Fall  2025</option>
			<option value="202601">Spring 2026</option>
			<option>no value</option>
		</select>
	`))
	require.NoError(t, err)

	options := SelectOptions(doc.Find("select[name=TERMYEAR]"))
	require.Equal(t, []Option{
		{Value: "202509", Text: "Fall 2025"},
		{Value: "202601", Text: "Spring 2026"},
	}, options)
}
