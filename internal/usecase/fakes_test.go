package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/internal/domain/service"
	"trueestate/pkg/errors"
)

// In-memory fakes mirroring the store adapters' error semantics, so the
// usecases exercise the same not-found and conflict paths they see in
// production.

type fakeTokenManager struct{}

func (f *fakeTokenManager) Generate(userID, role string, verified bool) (string, error) {
	return fmt.Sprintf("token-%s-%s", userID, role), nil
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakePropertyRepository struct {
	mu         sync.Mutex
	properties map[string]*entity.Property
	seq        int
	listErr    error
}

func newFakePropertyRepository() *fakePropertyRepository {
	return &fakePropertyRepository{properties: make(map[string]*entity.Property)}
}

func (r *fakePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if property.ID == "" {
		r.seq++
		property.ID = fmt.Sprintf("prop-%d", r.seq)
	}
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	copied := *property
	return &copied, nil
}

func (r *fakePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[property.ID]; !ok {
		return errors.NotFound("Property", nil)
	}
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepository) List(ctx context.Context, filter repository.PropertyFilter, limit, offset int) ([]*entity.Property, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Property
	for _, property := range r.properties {
		if filter.OwnerID != "" && property.OwnerID != filter.OwnerID {
			continue
		}
		copied := *property
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakePropertyRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Property
	for _, property := range r.properties {
		if property.OwnerID == ownerID {
			copied := *property
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePropertyRepository) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	property.Views++
	return nil
}

func (r *fakePropertyRepository) IncrementBookmarks(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	property.Bookmarks += delta
	return nil
}

type fakeOwnerRepository struct {
	mu     sync.Mutex
	owners map[string]*entity.Owner
	seq    int
}

func newFakeOwnerRepository() *fakeOwnerRepository {
	return &fakeOwnerRepository{owners: make(map[string]*entity.Owner)}
}

func (r *fakeOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner.ID == "" {
		r.seq++
		owner.ID = fmt.Sprintf("owner-%d", r.seq)
	}
	copied := *owner
	r.owners[owner.ID] = &copied
	return nil
}

func (r *fakeOwnerRepository) GetByID(ctx context.Context, id string) (*entity.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[id]
	if !ok {
		return nil, errors.NotFound("Owner", nil)
	}
	copied := *owner
	return &copied, nil
}

func (r *fakeOwnerRepository) GetByUserID(ctx context.Context, userID string) (*entity.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, owner := range r.owners {
		if owner.UserID == userID {
			copied := *owner
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Owner", nil)
}

func (r *fakeOwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owners[owner.ID]; !ok {
		return errors.NotFound("Owner", nil)
	}
	copied := *owner
	r.owners[owner.ID] = &copied
	return nil
}

func (r *fakeOwnerRepository) List(ctx context.Context, query string, limit, offset int) ([]*entity.Owner, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Owner
	for _, owner := range r.owners {
		copied := *owner
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

type fakeReviewRepository struct {
	mu      sync.Mutex
	reviews []*entity.PropertyReview
	seq     int
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{}
}

func (r *fakeReviewRepository) Create(ctx context.Context, review *entity.PropertyReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		r.seq++
		review.ID = fmt.Sprintf("review-%d", r.seq)
	}
	copied := *review
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *fakeReviewRepository) GetByUserAndProperty(ctx context.Context, userID, propertyID string) (*entity.PropertyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.UserID == userID && review.PropertyID == propertyID {
			copied := *review
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepository) ListByProperty(ctx context.Context, propertyID string, limit, offset int) ([]*entity.PropertyReview, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PropertyReview
	for _, review := range r.reviews {
		if review.PropertyID == propertyID {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.PropertyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PropertyReview
	for _, review := range r.reviews {
		if review.OwnerID == ownerID {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeCommentRepository struct {
	mu       sync.Mutex
	comments []*entity.PropertyComment
	seq      int
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{}
}

func (r *fakeCommentRepository) Create(ctx context.Context, comment *entity.PropertyComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		r.seq++
		comment.ID = fmt.Sprintf("comment-%d", r.seq)
	}
	copied := *comment
	r.comments = append(r.comments, &copied)
	return nil
}

func (r *fakeCommentRepository) ListByProperty(ctx context.Context, propertyID string, limit, offset int) ([]*entity.PropertyComment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PropertyComment
	for _, comment := range r.comments {
		if comment.PropertyID == propertyID {
			copied := *comment
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

type fakeBookmarkRepository struct {
	mu        sync.Mutex
	bookmarks map[string]*entity.Bookmark
}

func newFakeBookmarkRepository() *fakeBookmarkRepository {
	return &fakeBookmarkRepository{bookmarks: make(map[string]*entity.Bookmark)}
}

func bookmarkKey(userID, propertyID string) string {
	return userID + "_" + propertyID
}

func (r *fakeBookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := bookmarkKey(bookmark.UserID, bookmark.PropertyID)
	if _, ok := r.bookmarks[key]; ok {
		return errors.Conflict("Property already bookmarked")
	}
	bookmark.ID = key
	copied := *bookmark
	r.bookmarks[key] = &copied
	return nil
}

func (r *fakeBookmarkRepository) Get(ctx context.Context, userID, propertyID string) (*entity.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookmark, ok := r.bookmarks[bookmarkKey(userID, propertyID)]
	if !ok {
		return nil, errors.NotFound("Bookmark", nil)
	}
	copied := *bookmark
	return &copied, nil
}

func (r *fakeBookmarkRepository) Delete(ctx context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := bookmarkKey(userID, propertyID)
	if _, ok := r.bookmarks[key]; !ok {
		return errors.NotFound("Bookmark", nil)
	}
	delete(r.bookmarks, key)
	return nil
}

func (r *fakeBookmarkRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Bookmark, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Bookmark
	for _, bookmark := range r.bookmarks {
		if bookmark.UserID == userID {
			copied := *bookmark
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookmarkRepository) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bookmarks[bookmarkKey(userID, propertyID)]
	return ok, nil
}

type fakePusher struct {
	mu       sync.Mutex
	payloads map[string][]interface{}
}

func newFakePusher() *fakePusher {
	return &fakePusher{payloads: make(map[string][]interface{})}
}

func (p *fakePusher) SendToUser(userID string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads[userID] = append(p.payloads[userID], payload)
}

type fakeImageStore struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{}
}

func (s *fakeImageStore) UploadImage(ctx context.Context, body io.Reader, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	url := fmt.Sprintf("https://cdn.example.com/properties/img-%d", len(s.urls)+1)
	s.urls = append(s.urls, url)
	return url, nil
}

type fakeVerifier struct {
	result *service.IdentityLookupResult
	err    error
}

func (v *fakeVerifier) VerifyIdentity(ctx context.Context, req service.IdentityLookupRequest) (*service.IdentityLookupResult, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.result, nil
}
