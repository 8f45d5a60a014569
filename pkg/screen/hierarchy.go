package screen

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/devicelab-dev/droidctl/pkg/core"
)

// rootTag is the document root of a uiautomator dump. It carries no widget
// attributes worth keeping and is skipped for record extraction.
const rootTag = "hierarchy"

// ParseHierarchy flattens a uiautomator XML dump into element records in
// pre-order document order: each node's record precedes the records of all
// of its descendants. Nodes without attributes produce no record but their
// children are still visited. The tree structure itself is discarded.
//
// The literal attribute tokens "true" and "false" are coerced to bool;
// every other value is kept as a string. Returns core.ErrParse when the
// input is not a well-formed dump.
func ParseHierarchy(xmlData string) ([]Element, error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlData))

	var elements []Element
	foundRoot := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, core.ErrParse.WithCause(err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local == rootTag {
			foundRoot = true
			continue
		}
		if len(start.Attr) == 0 {
			continue
		}

		el := make(Element, len(start.Attr))
		for _, attr := range start.Attr {
			el[attr.Name.Local] = coerce(attr.Value)
		}
		elements = append(elements, el)
	}

	if !foundRoot {
		return nil, core.ErrParse.WithMessage("invalid hierarchy dump: no " + rootTag + " element found")
	}

	return elements, nil
}

// coerce maps exactly the tokens "true" and "false" to bool.
// "True", "1" and friends stay strings.
func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	default:
		return value
	}
}
