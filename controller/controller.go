// Package controller implements the page state shared by every catalog screen:
// a locally cached list, a new-record draft, an in-place edit buffer and
// per-row detail toggles, kept in sync with the remote API after each mutation
// without re-fetching.
package controller

import (
	"context"
	"errors"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/jsonlog"
	"github.com/emzola/biblioadmin/internal/validator"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrNoBookSelected   = errors.New("no book selected")
	ErrBookOutOfStock   = errors.New("book out of stock")
)

// ResourceClient is the remote capability a controller needs for its entity.
type ResourceClient[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id int64, record T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier surfaces transient success, warning and error notices to the user.
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// ConfirmationPrompt gates destructive operations behind a blocking yes/no
// question.
type ConfirmationPrompt interface {
	Confirm(message string) bool
}

// Spec parameterizes the generic controller for one entity type.
type Spec[T data.Entity] struct {
	Label      string // singular, for notices, e.g. "author"
	Plural     string // e.g. "authors"
	EmptyDraft func() T
	Validate   func(v *validator.Validator, record *T)
	Samples    []T // created in order when the remote list is first seen empty
}

// Controller owns one page's view state and reconciles it with the remote
// resource after each mutation. It is single-threaded by design: all methods
// must be called from the page's event loop.
type Controller[T data.Entity] struct {
	spec     Spec[T]
	client   ResourceClient[T]
	notifier Notifier
	confirm  ConfirmationPrompt
	logger   *jsonlog.Logger

	items          []T
	draft          T
	editing        *T
	detailsVisible map[int64]bool
}

// New creates a controller for one entity page. Failures of every operation
// are reported through the notifier; the returned errors additionally let
// composite pages and tests branch on the outcome.
func New[T data.Entity](spec Spec[T], client ResourceClient[T], notifier Notifier, confirm ConfirmationPrompt, logger *jsonlog.Logger) *Controller[T] {
	return &Controller[T]{
		spec:           spec,
		client:         client,
		notifier:       notifier,
		confirm:        confirm,
		logger:         logger,
		draft:          spec.EmptyDraft(),
		detailsVisible: make(map[int64]bool),
	}
}

// Items returns the locally cached list, in the order the remote returned it,
// with created records appended at the end.
func (c *Controller[T]) Items() []T { return c.items }

// Draft returns the new-record form buffer for in-place editing by the page.
func (c *Controller[T]) Draft() *T { return &c.draft }

// Editing returns the record currently selected for editing, or nil.
func (c *Controller[T]) Editing() *T { return c.editing }

// DetailsVisible reports whether the row with the given id is expanded.
// Unknown ids default to collapsed.
func (c *Controller[T]) DetailsVisible(id int64) bool { return c.detailsVisible[id] }

// ToggleDetails flips the visibility of one row's details. Local state only.
func (c *Controller[T]) ToggleDetails(id int64) {
	c.detailsVisible[id] = !c.detailsVisible[id]
}

// SetSamples replaces the seed sample set. Used by pages whose samples can
// only be built after their reference lists have loaded.
func (c *Controller[T]) SetSamples(samples []T) { c.spec.Samples = samples }

// LoadInitial fetches the remote list, seeds it with samples if it is empty,
// and adopts the result as the page's items. On failure the previous items are
// kept (empty on first load).
func (c *Controller[T]) LoadInitial(ctx context.Context) error {
	items, err := c.client.List(ctx)
	if err != nil {
		c.reportError("failed to fetch "+c.spec.Plural, err)
		return err
	}
	items, err = c.seedIfEmpty(ctx, items)
	if err != nil {
		c.reportError("failed to seed sample "+c.spec.Plural, err)
		return err
	}
	c.items = items
	return nil
}

// SubmitCreate validates the draft and creates it remotely. On success the
// created record is appended to the items and the draft is reset to the empty
// template. On any failure the items and draft are left untouched.
func (c *Controller[T]) SubmitCreate(ctx context.Context) error {
	v := validator.New()
	c.spec.Validate(v, &c.draft)
	if !v.Valid() {
		c.reportValidation(v)
		return ErrFailedValidation
	}
	created, err := c.client.Create(ctx, c.draft)
	if err != nil {
		c.reportError("failed to add "+c.spec.Label, err)
		return err
	}
	c.items = append(c.items, created)
	c.draft = c.spec.EmptyDraft()
	c.notifier.Success(c.spec.Label + " added successfully")
	return nil
}

// BeginEdit selects a copy of the given record for in-place editing.
func (c *Controller[T]) BeginEdit(record T) {
	edit := record
	c.editing = &edit
}

// CancelEdit clears the edit selection and resets the draft buffer. No remote
// effect.
func (c *Controller[T]) CancelEdit() {
	c.editing = nil
	c.draft = c.spec.EmptyDraft()
}

// SubmitUpdate validates the edit buffer and replaces the remote record with
// it. On success the matching item is swapped for the server's returned record
// and the edit selection is cleared. On any failure both are left untouched.
func (c *Controller[T]) SubmitUpdate(ctx context.Context) error {
	if c.editing == nil {
		c.notifier.Warning("no " + c.spec.Label + " selected for update")
		return ErrFailedValidation
	}
	v := validator.New()
	c.spec.Validate(v, c.editing)
	if !v.Valid() {
		c.reportValidation(v)
		return ErrFailedValidation
	}
	updated, err := c.client.Update(ctx, (*c.editing).EntityID(), *c.editing)
	if err != nil {
		c.reportError("failed to update "+c.spec.Label, err)
		return err
	}
	for i := range c.items {
		if c.items[i].EntityID() == updated.EntityID() {
			c.items[i] = updated
			break
		}
	}
	c.editing = nil
	c.notifier.Success(c.spec.Label + " updated successfully")
	return nil
}

// Remove deletes the record with the given id after a confirmation prompt. A
// declined prompt is a no-op. On success the matching item is removed; the
// relative order of the remaining items is preserved.
func (c *Controller[T]) Remove(ctx context.Context, id int64) error {
	if !c.confirm.Confirm("Are you sure you want to delete this " + c.spec.Label + "?") {
		return nil
	}
	if err := c.client.Delete(ctx, id); err != nil {
		c.reportError("failed to delete "+c.spec.Label, err)
		return err
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.notifier.Success(c.spec.Label + " deleted successfully")
	return nil
}

func (c *Controller[T]) reportValidation(v *validator.Validator) {
	c.notifier.Warning("please fill in all required fields")
	properties := map[string]string{"resource": c.spec.Label}
	for field, message := range v.Errors {
		properties[field] = message
	}
	c.logger.PrintWarn("validation failed", properties)
}

func (c *Controller[T]) reportError(message string, err error) {
	c.notifier.Error(message)
	c.logger.PrintError(err, map[string]string{"resource": c.spec.Label})
}
