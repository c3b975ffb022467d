package services

// RecipeFormURL is the hosted recipe submission form shown inside the dialog
const RecipeFormURL = "https://docs.google.com/forms/d/e/1FAIpQLSdcUOhlo5siATjpL6mrTZkAOV9NVFUWWPK5U6IyWTqbsr1u6A/viewform?embedded=true"

// RecipeFormOrigin is the origin the dialog iframe loads from
const RecipeFormOrigin = "https://docs.google.com"

// DialogTitle is the heading shown in the dialog header
const DialogTitle = "Submit a Recipe"

// SubmissionDialog is the modal overlay hosting the external recipe form.
// It owns no data: it reflects the visibility set by its parent and reports
// close requests through onClose.
type SubmissionDialog struct {
	doc     *Document
	onClose func()
	visible bool
	// release is non-nil while the dialog holds the document scroll-lock
	release func()
}

// NewSubmissionDialog creates a hidden dialog mounted into doc.
// onClose is invoked whenever the visitor asks to dismiss the dialog.
func NewSubmissionDialog(doc *Document, onClose func()) *SubmissionDialog {
	return &SubmissionDialog{
		doc:     doc,
		onClose: onClose,
	}
}

// Visible reports whether the dialog is rendered
func (d *SubmissionDialog) Visible() bool {
	return d.visible
}

// SetVisible applies a new visibility value. Becoming visible acquires the
// document scroll-lock; becoming hidden releases it.
func (d *SubmissionDialog) SetVisible(visible bool) {
	if visible == d.visible {
		return
	}
	d.visible = visible

	if !visible {
		d.releaseScrollLock()
		return
	}
	// A previous release always runs before a new acquisition.
	d.releaseScrollLock()
	d.release = d.doc.AcquireScrollLock()
}

// Close handles activation of the header close control
func (d *SubmissionDialog) Close() {
	d.requestClose()
}

// ClickBackdrop handles activation of the area outside the content panel
func (d *SubmissionDialog) ClickBackdrop() {
	d.requestClose()
}

// ClickPanel handles activation inside the content panel. The panel never
// forwards the activation to the backdrop, so the dialog stays open.
func (d *SubmissionDialog) ClickPanel() {}

// Unmount removes the dialog from the page and releases the scroll-lock
// if it is still held.
func (d *SubmissionDialog) Unmount() {
	d.visible = false
	d.releaseScrollLock()
}

// FormURL returns the address loaded by the embedded form surface
func (d *SubmissionDialog) FormURL() string {
	return RecipeFormURL
}

// Title returns the dialog heading
func (d *SubmissionDialog) Title() string {
	return DialogTitle
}

func (d *SubmissionDialog) requestClose() {
	if !d.visible {
		return
	}
	if d.onClose != nil {
		d.onClose()
	}
}

func (d *SubmissionDialog) releaseScrollLock() {
	if d.release == nil {
		return
	}
	d.release()
	d.release = nil
}
