package navigation

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Overlay placement near the top-right corner of the hosting canvas
const (
	overlayMargin = float32(12)
)

// MountStrategy makes a resolved view the active occupant of its surface.
// One implementation exists per ViewKind; the service selects them from a
// closed lookup table, so adding a kind means one enum value plus one
// strategy entry.
type MountStrategy interface {
	Mount(ctx *NavigationContext, view fyne.CanvasObject, match *RouteMatch) error
}

// mainStrategy shows primary content inside the context's mount target
type mainStrategy struct{}

func (mainStrategy) Mount(ctx *NavigationContext, view fyne.CanvasObject, match *RouteMatch) error {
	if ctx.Target == nil {
		return fmt.Errorf("%w: context %q has no mount target", ErrMountFailure, ctx.Name)
	}
	if err := ctx.Target.Show(view); err != nil {
		return fmt.Errorf("%w: %v", ErrMountFailure, err)
	}
	return nil
}

// modalStrategy wraps the view in an application-modal dialog. The dialog's
// close callback removes the instance from the tracking list; that callback
// is the only destruction path for modal instances.
type modalStrategy struct {
	svc *Service
}

func (m modalStrategy) Mount(ctx *NavigationContext, view fyne.CanvasObject, match *RouteMatch) error {
	if m.svc.window == nil {
		return fmt.Errorf("%w: no window configured for modal views", ErrMountFailure)
	}

	title := match.Config.Title
	if title == "" {
		title = match.Config.Path
	}

	d := dialog.NewCustom(title, m.svc.closeLabel, view, m.svc.window)
	m.svc.trackModal(match.Config.Path, view, d.Hide)
	d.SetOnClosed(func() {
		m.svc.untrackModal(view)
	})
	if dv, ok := view.(Dismissable); ok {
		dv.SetDismiss(d.Hide)
	}
	d.Show()
	return nil
}

// overlayStrategy shows the view as a non-blocking popup near the top-right
// corner of the canvas. A view implementing Dismissable receives the func
// that hides the popup and reports its destruction to the tracking list.
type overlayStrategy struct {
	svc *Service
}

func (o overlayStrategy) Mount(ctx *NavigationContext, view fyne.CanvasObject, match *RouteMatch) error {
	if o.svc.window == nil {
		return fmt.Errorf("%w: no window configured for overlay views", ErrMountFailure)
	}

	canvas := o.svc.window.Canvas()
	pop := widget.NewPopUp(view, canvas)

	o.svc.trackOverlay(match.Config.Path, view, pop.Hide)
	if dv, ok := view.(Dismissable); ok {
		dv.SetDismiss(func() {
			pop.Hide()
			o.svc.untrackOverlay(view)
		})
	}

	size := pop.MinSize()
	pos := fyne.NewPos(canvas.Size().Width-size.Width-overlayMargin, overlayMargin)
	pop.ShowAtPosition(pos)
	return nil
}

// embeddedStrategy mounts like main but first tells the view it is running
// standalone, so it can navigate on interaction instead of emitting to an
// embedding parent. Views nested inside other views as plain components
// bypass this path entirely.
type embeddedStrategy struct {
	main mainStrategy
}

func (e embeddedStrategy) Mount(ctx *NavigationContext, view fyne.CanvasObject, match *RouteMatch) error {
	if sv, ok := view.(Standalone); ok {
		sv.SetStandalone(true)
	}
	return e.main.Mount(ctx, view, match)
}
