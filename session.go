package assetbook

import (
	"context"

	"go.uber.org/zap"
)

// View draws the assets table. Render receives a snapshot of the whole cache.
type View interface {
	Render(assets []Asset)
}

// ViewFunc adapts a function to a View.
type ViewFunc func(assets []Asset)

func (f ViewFunc) Render(assets []Asset) { f(assets) }

// Banner messages.
const (
	MsgCreated   = "Asset registered"
	MsgUpdated   = "Asset updated"
	MsgDeleted   = "Asset deleted"
	MsgRefreshed = "Data refreshed"
)

// Session is the asset client: it owns the cache and drives the
// request → re-fetch → re-render cycle.
//
// Mutations never patch the cache: after every successful write the whole
// collection is fetched again. A failed request leaves the cache untouched
// and is reported as a banner.
type Session struct {
	service  Service
	cache    *Cache
	notifier *Notifier
	view     View
	log      *zap.Logger
	editor   *Editor
}

// NewSession returns a session with an empty cache. view and notifier may be nil.
func NewSession(service Service, view View, notifier *Notifier, log *zap.Logger) *Session {
	if notifier == nil {
		notifier = NewNotifier(nil, 0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		service:  service,
		cache:    new(Cache),
		notifier: notifier,
		view:     view,
		log:      log,
	}
	s.editor = &Editor{session: s, form: DefaultForm()}
	return s
}

func (s *Session) Cache() *Cache       { return s.cache }
func (s *Session) Notifier() *Notifier { return s.notifier }
func (s *Session) Editor() *Editor     { return s.editor }

// Render draws the current cache content.
func (s *Session) Render() {
	if s.view != nil {
		s.view.Render(s.cache.Snapshot())
	}
}

// FetchAll replaces the cache with the server collection and renders it.
func (s *Session) FetchAll(ctx context.Context) error {
	ticket := s.cache.Begin()
	assets, err := s.service.List(ctx)
	if err != nil {
		s.log.Debug("fetch failed", zap.Error(err))
		s.notifier.Error(err)
		return err
	}
	if !s.cache.Replace(ticket, assets) {
		s.log.Debug("stale fetch dropped", zap.Uint64("ticket", uint64(ticket)))
		return nil
	}
	s.Render()
	return nil
}

// Create sends a new asset. The cache is not updated.
func (s *Session) Create(ctx context.Context, in Input) (Asset, error) {
	return s.service.Create(ctx, in)
}

// Update replaces asset id. The cache is not updated.
func (s *Session) Update(ctx context.Context, id ID, in Input) (Asset, error) {
	return s.service.Update(ctx, id, in)
}

// Delete removes asset id. The cache is not updated.
func (s *Session) Delete(ctx context.Context, id ID) (Confirmation, error) {
	return s.service.Delete(ctx, id)
}

// Submit registers a new asset then re-fetches the collection.
func (s *Session) Submit(ctx context.Context, in Input) error {
	created, err := s.Create(ctx, in)
	if err != nil {
		s.notifier.Error(err)
		return err
	}
	s.log.Debug("asset created", zap.Stringer("id", created.ID))
	s.notifier.Notify(MsgCreated, Success)
	return s.FetchAll(ctx)
}

// Remove deletes asset id once confirm agrees, then re-fetches the
// collection. It reports whether the delete request was sent and succeeded.
// A nil confirm always agrees.
func (s *Session) Remove(ctx context.Context, id ID, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	if _, err := s.Delete(ctx, id); err != nil {
		s.notifier.Error(err)
		return false, err
	}
	s.log.Debug("asset deleted", zap.Stringer("id", id))
	s.notifier.Notify(MsgDeleted, Success)
	return true, s.FetchAll(ctx)
}

// Refresh re-fetches the collection on user request.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.FetchAll(ctx); err != nil {
		return err
	}
	s.notifier.Notify(MsgRefreshed, Success)
	return nil
}
