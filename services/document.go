package services

import "sync"

// Overflow values mirrored onto <body> when the page renders
const (
	OverflowHidden = "hidden"
	OverflowUnset  = "unset"
)

// Document is the page a view is mounted into. It owns the page-level
// scroll-lock flag read by the layout when it renders <body>.
// A Document belongs to a single page render and is not safe for concurrent use.
type Document struct {
	scrollLocked bool
}

// NewDocument returns an unlocked document
func NewDocument() *Document {
	return &Document{}
}

// ScrollLocked reports whether background scrolling is currently disabled
func (d *Document) ScrollLocked() bool {
	return d.scrollLocked
}

// Overflow returns the body overflow value matching the scroll-lock state
func (d *Document) Overflow() string {
	if d.scrollLocked {
		return OverflowHidden
	}
	return OverflowUnset
}

// AcquireScrollLock locks background scrolling and returns the release func.
// Release always unlocks the document and is safe to call more than once;
// callers must invoke it on every exit path.
func (d *Document) AcquireScrollLock() (release func()) {
	d.scrollLocked = true

	var once sync.Once
	return func() {
		once.Do(func() {
			d.scrollLocked = false
		})
	}
}
