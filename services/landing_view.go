package services

import (
	"errors"
	"fmt"

	"leibfried_clan_go/models"
)

// ErrUnknownEvent is returned when a view receives an event it does not handle
var ErrUnknownEvent = errors.New("unknown view event")

// ViewEvent names a visitor interaction with the landing page
type ViewEvent string

const (
	EventSubmitRecipe  ViewEvent = "submit-recipe" // call-to-action
	EventCloseDialog   ViewEvent = "close"         // dialog header close control
	EventClickBackdrop ViewEvent = "backdrop"      // area outside the dialog panel
	EventClickPanel    ViewEvent = "panel"         // inside the dialog panel
)

// LandingView is the page a visitor sees. It owns the dialog visibility flag
// and hands its Close operation to the submission dialog.
type LandingView struct {
	content       models.LandingContent
	dialogVisible bool
	dialog        *SubmissionDialog
}

// NewLandingView creates the view mounted into doc with the dialog hidden
func NewLandingView(doc *Document, content models.LandingContent) *LandingView {
	v := &LandingView{content: content}
	v.dialog = NewSubmissionDialog(doc, v.Close)
	return v
}

// Content returns the hero copy rendered by the view
func (v *LandingView) Content() models.LandingContent {
	return v.content
}

// DialogVisible reports the current dialog visibility
func (v *LandingView) DialogVisible() bool {
	return v.dialogVisible
}

// Dialog returns the submission dialog owned by the view
func (v *LandingView) Dialog() *SubmissionDialog {
	return v.dialog
}

// SubmitRecipe handles activation of the call-to-action control
func (v *LandingView) SubmitRecipe() {
	v.setDialogVisible(true)
}

// Close hides the submission dialog
func (v *LandingView) Close() {
	v.setDialogVisible(false)
}

// Dispatch routes a named visitor interaction to the matching operation
func (v *LandingView) Dispatch(event ViewEvent) error {
	switch event {
	case EventSubmitRecipe:
		v.SubmitRecipe()
	case EventCloseDialog:
		v.dialog.Close()
	case EventClickBackdrop:
		v.dialog.ClickBackdrop()
	case EventClickPanel:
		v.dialog.ClickPanel()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return nil
}

// Unmount tears the view down, releasing anything the dialog still holds
func (v *LandingView) Unmount() {
	v.dialogVisible = false
	v.dialog.Unmount()
}

func (v *LandingView) setDialogVisible(visible bool) {
	v.dialogVisible = visible
	v.dialog.SetVisible(visible)
}
