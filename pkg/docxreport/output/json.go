package output

import (
	"encoding/json"

	"github.com/hordu-ma/docxreport/pkg/docxreport/docx"
)

// ToJSON serializes a document outline.
func ToJSON(o *docx.Outline, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(o, "", "  ")
	}
	return json.Marshal(o)
}
