package nodehost

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonArtifacts are stripped from host text after JSON decoding.
var jsonArtifacts = strings.NewReplacer("[", "", "]", "", `"`, "", "'", "")

// NormaliseText cleans colour lists that arrive from other nodes in encoded form.
// A JSON array is joined one element per line and a JSON string is unquoted.
// Literal "\n" escapes become newlines and brackets and quotes are removed.
// Separator handling is left to the permissive batch parser.
func NormaliseText(s string) string {
	text := strings.TrimSpace(s)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		switch v := parsed.(type) {
		case []any:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = fmt.Sprint(item)
			}
			text = strings.Join(items, "\n")
		case string:
			text = v
		}
	}

	text = strings.ReplaceAll(text, `\n`, "\n")
	return jsonArtifacts.Replace(text)
}
