// Package markdown renders question stubs and inspects existing ones.
package markdown

// RenderStub returns the file body for a question: a level-one heading
// followed by a blank line.
func RenderStub(raw string) []byte {
	buf := make([]byte, 0, len(raw)+4)
	buf = append(buf, "# "...)
	buf = append(buf, raw...)
	buf = append(buf, "\n\n"...)
	return buf
}
