package service

import (
	"Wildsalt/internal/model"
	"Wildsalt/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeArticleRepo 只实现测试用到的方法，其余返回零值
type fakeArticleRepo struct {
	repository.ArticleRepo

	articles map[primitive.ObjectID]*model.Article
	views    map[primitive.ObjectID]int64
	likes    map[primitive.ObjectID]int64
	comments map[primitive.ObjectID]int64

	setLikesErr        error
	incComments        []int
	listPublishedLimit int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[primitive.ObjectID]*model.Article),
		views:    make(map[primitive.ObjectID]int64),
		likes:    make(map[primitive.ObjectID]int64),
		comments: make(map[primitive.ObjectID]int64),
	}
}

func (f *fakeArticleRepo) add(article *model.Article) *model.Article {
	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	f.articles[article.ID] = article
	f.views[article.ID] = article.Views
	return article
}

func (f *fakeArticleRepo) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.articles[id]
	return ok, nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Article, error) {
	return f.articles[id], nil
}

func (f *fakeArticleRepo) GetBySlug(_ context.Context, slug string, publishedOnly bool) (*model.Article, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			if publishedOnly && a.Status != model.ArticleStatusPublished {
				return nil, nil
			}
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeArticleRepo) ListPublished(_ context.Context, limit int) ([]*model.Article, error) {
	f.listPublishedLimit = limit
	var out []*model.Article
	for _, a := range f.articles {
		if a.Status == model.ArticleStatusPublished {
			out = append(out, a)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) GetViews(_ context.Context, id primitive.ObjectID) (int64, error) {
	return f.views[id], nil
}

func (f *fakeArticleRepo) IncViews(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.views[id]++
	return f.views[id], nil
}

func (f *fakeArticleRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeArticleRepo) Create(_ context.Context, article *model.Article) error {
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	f.add(article)
	return nil
}

func (f *fakeArticleRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) error {
	a, ok := f.articles[id]
	if !ok {
		return nil
	}
	if v, ok := update["status"].(string); ok {
		a.Status = v
	}
	if v, ok := update["title"].(string); ok {
		a.Title = v
	}
	if v, ok := update["slug"].(string); ok {
		a.Slug = v
	}
	if v, ok := update["publishedAt"].(time.Time); ok {
		a.PublishedAt = &v
	}
	return nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) CountPublishedByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var count int64
	for _, a := range f.articles {
		if a.Status != model.ArticleStatusPublished {
			continue
		}
		for _, c := range a.Categories {
			if c == categoryID {
				count++
				break
			}
		}
	}
	return count, nil
}

func (f *fakeArticleRepo) IncComments(_ context.Context, id primitive.ObjectID, delta int) error {
	f.comments[id] += int64(delta)
	f.incComments = append(f.incComments, delta)
	return nil
}

func (f *fakeArticleRepo) SetLikes(_ context.Context, id primitive.ObjectID, total int64) error {
	if f.setLikesErr != nil {
		return f.setLikesErr
	}
	f.likes[id] = total
	return nil
}

type fakeViewRepo struct {
	repository.ViewRepo

	created []*model.PageView
	recent  bool
}

func (f *fakeViewRepo) Create(_ context.Context, view *model.PageView) error {
	view.CreatedAt = time.Now()
	f.created = append(f.created, view)
	return nil
}

func (f *fakeViewRepo) HasRecent(_ context.Context, _ primitive.ObjectID, _ string, _ time.Time) (bool, error) {
	return f.recent, nil
}

func (f *fakeViewRepo) Count(_ context.Context, _ primitive.ObjectID, _ *time.Time) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeViewRepo) UniqueVisitors(_ context.Context, _ primitive.ObjectID, _ *time.Time) (int64, error) {
	seen := make(map[string]struct{})
	for _, v := range f.created {
		seen[v.IP] = struct{}{}
	}
	return int64(len(seen)), nil
}

func (f *fakeViewRepo) DeviceStats(_ context.Context, _ primitive.ObjectID, _ *time.Time) ([]repository.DeviceStat, error) {
	return []repository.DeviceStat{}, nil
}

func (f *fakeViewRepo) Latest(_ context.Context, _ primitive.ObjectID) (*model.PageView, error) {
	if len(f.created) == 0 {
		return nil, nil
	}
	return f.created[len(f.created)-1], nil
}

func (f *fakeViewRepo) DeleteByArticle(_ context.Context, _ primitive.ObjectID) error {
	f.created = nil
	return nil
}

type fakeReactionRepo struct {
	repository.ReactionRepo

	inserted   []*model.Reaction
	insertErrs []error
}

func (f *fakeReactionRepo) Insert(_ context.Context, reaction *model.Reaction) error {
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		if err != nil {
			return err
		}
	}
	f.inserted = append(f.inserted, reaction)
	return nil
}

func (f *fakeReactionRepo) CountsByEmoji(_ context.Context, articleID primitive.ObjectID) ([]model.ReactionCount, error) {
	byEmoji := make(map[string]int64)
	for _, r := range f.inserted {
		if r.ArticleID == articleID {
			byEmoji[r.Emoji]++
		}
	}
	counts := make([]model.ReactionCount, 0, len(byEmoji))
	for emoji, count := range byEmoji {
		counts = append(counts, model.ReactionCount{Emoji: emoji, Count: count})
	}
	return counts, nil
}

func (f *fakeReactionRepo) DeleteByArticle(_ context.Context, articleID primitive.ObjectID) error {
	kept := f.inserted[:0]
	for _, r := range f.inserted {
		if r.ArticleID != articleID {
			kept = append(kept, r)
		}
	}
	f.inserted = kept
	return nil
}

type fakeUserRepo struct {
	repository.UserRepo

	users     map[primitive.ObjectID]*model.User
	lastLogin []primitive.ObjectID
	updates   []bson.M
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (f *fakeUserRepo) add(user *model.User) *model.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) FindAdminByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Role == model.RoleAdmin {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id primitive.ObjectID) error {
	f.lastLogin = append(f.lastLogin, id)
	return nil
}

func (f *fakeUserRepo) UpdateCredentials(_ context.Context, id primitive.ObjectID, update bson.M) error {
	f.updates = append(f.updates, update)
	if user, ok := f.users[id]; ok {
		if v, ok := update["username"].(string); ok {
			user.Username = v
		}
		if v, ok := update["email"].(string); ok {
			user.Email = v
		}
		if v, ok := update["passwordHash"].(string); ok {
			user.PasswordHash = v
		}
		if v, ok := update["salt"].(string); ok {
			user.Salt = v
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	repository.CategoryRepo

	categories map[primitive.ObjectID]*model.Category
	counts     map[primitive.ObjectID]int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[primitive.ObjectID]*model.Category),
		counts:     make(map[primitive.ObjectID]int64),
	}
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) SetCount(_ context.Context, id primitive.ObjectID, count int64) error {
	f.counts[id] = count
	return nil
}

type fakeCommentRepo struct {
	repository.CommentRepo

	comments map[primitive.ObjectID]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[primitive.ObjectID]*model.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeCommentRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	if c, ok := f.comments[id]; ok {
		c.Status = status
	}
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) DeleteByArticle(_ context.Context, articleID primitive.ObjectID) error {
	for id, c := range f.comments {
		if c.ArticleID == articleID {
			delete(f.comments, id)
		}
	}
	return nil
}
