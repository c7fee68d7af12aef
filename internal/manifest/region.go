package manifest

import "strings"

// Region is a pair of literal markers bounding generated content.
type Region struct {
	Start string
	End   string
}

// Block returns the region filled with inner.
func (r Region) Block(inner string) string {
	return r.Start + "\n" + inner + "\n" + r.End
}

// Find returns the byte offsets of the first region in doc: start is the
// offset of the first start marker and end the offset just past the first
// end marker that follows it. ok is false when either is missing.
func (r Region) Find(doc string) (start, end int, ok bool) {
	start = strings.Index(doc, r.Start)
	if start == -1 {
		return 0, 0, false
	}
	after := start + len(r.Start)
	rel := strings.Index(doc[after:], r.End)
	if rel == -1 {
		return 0, 0, false
	}
	return start, after + rel + len(r.End), true
}

// Inner returns the current content between the markers of the first region,
// without the newlines that Block adds.
func (r Region) Inner(doc string) (string, bool) {
	start, end, ok := r.Find(doc)
	if !ok {
		return "", false
	}
	inner := doc[start+len(r.Start) : end-len(r.End)]
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	return inner, true
}
