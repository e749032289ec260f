package wikimedia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResponse_Extracts(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "existing page",
			body: `{"query":{"pages":{"123":{"pageid":123,"title":"koira","extract":"== koira ==\n"}}}}`,
			want: []string{"== koira =="},
		},
		{
			name: "missing page",
			body: `{"query":{"pages":{"-1":{"title":"xyzzy","missing":""}}}}`,
			want: []string{},
		},
		{
			name: "empty extract is dropped",
			body: `{"query":{"pages":{"2":{"pageid":2,"extract":"  "},"1":{"pageid":1,"extract":"a"}}}}`,
			want: []string{"a"},
		},
		{
			name: "no query",
			body: `{"batchcomplete":""}`,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var response QueryResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &response))
			assert.Equal(t, tt.want, response.Extracts())
		})
	}
}

func TestDefinitionResponse_Usages(t *testing.T) {
	body := `{
		"en": [{"partOfSpeech":"Noun","language":"English","definitions":[{"definition":"A <b>festive</b> occasion."}]}],
		"es": [{"partOfSpeech":"Noun","language":"Spanish","definitions":[{"definition":"gala"}]}]
	}`
	var response DefinitionResponse
	require.NoError(t, json.Unmarshal([]byte(body), &response))

	usages := response.Usages("es", "en", "es")
	require.Len(t, usages, 2)
	assert.Equal(t, "Spanish", usages[0].Language)
	assert.Equal(t, "English", usages[1].Language)
	assert.Equal(t, "A <b>festive</b> occasion.", usages[1].Definitions[0].Definition)

	assert.Empty(t, response.Usages("fi"))
}
