// Package xmlmap converts between XML documents and generic nested
// key-value structures, without a schema.
//
// Parse folds an XML document into an ordered document.Object: attributes
// and child elements become keys, repeated sibling tags merge into
// sequences, and namespaced tags keep their namespace as part of the key.
// Render walks a single-rooted mapping the other way and emits a complete
// XML document, wrapping string scalars in CDATA sections.
//
//	doc, err := xmlmap.Parse(`<a><b>5</b><c>9</c></a>`)
//	// doc.Field("a").(*document.Object).Field("b") == "5"
//
//	out, err := xmlmap.Render(map[string]interface{}{
//		"a": map[string]interface{}{"b": "5"},
//	})
//	// out == "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n<a><b><![CDATA[5]]></b></a>"
//
// Round-tripping is not lossless in general: folding an element's
// attributes and children into one mapping discards the distinction
// between them.
package xmlmap
