package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newArticleFixture() (ArticleService, *fakeArticleRepo, *fakeCategoryRepo) {
	articleRepo := newFakeArticleRepo()
	categoryRepo := newFakeCategoryRepo()
	svc := NewArticleService(articleRepo, categoryRepo, &fakeViewRepo{}, &fakeReactionRepo{}, newFakeCommentRepo())
	return svc, articleRepo, categoryRepo
}

func TestCreateArticleSlugFromTitle(t *testing.T) {
	svc, _, _ := newArticleFixture()

	article, err := svc.Create(context.Background(), &dto.CreateArticleDTO{
		Title:   "Hello World Post",
		Content: "正文",
	}, "uid", "站长")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if article.Slug != "hello-world-post" {
		t.Errorf("slug = %q", article.Slug)
	}
	if article.Status != model.ArticleStatusDraft {
		t.Errorf("status = %q, want draft", article.Status)
	}
	if article.PublishedAt != nil {
		t.Error("draft should not carry publishedAt")
	}
}

func TestCreateArticleParsesAuthorID(t *testing.T) {
	svc, _, _ := newArticleFixture()
	authorID := primitive.NewObjectID()

	article, err := svc.Create(context.Background(), &dto.CreateArticleDTO{
		Title:   "署名文章",
		Content: "正文",
	}, authorID.Hex(), "站长")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if article.Author != authorID {
		t.Errorf("author = %v, want %v", article.Author, authorID)
	}
	if article.AuthorName != "站长" {
		t.Errorf("author name = %q", article.AuthorName)
	}

	// 非法 user_id 不阻断创建，署名落空 ID
	article, err = svc.Create(context.Background(), &dto.CreateArticleDTO{
		Title:   "匿名署名",
		Content: "正文",
	}, "uid", "站长")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !article.Author.IsZero() {
		t.Errorf("author = %v, want zero ObjectID", article.Author)
	}
}

func TestCreateArticleSlugConflictAppendsSuffix(t *testing.T) {
	svc, articleRepo, _ := newArticleFixture()
	articleRepo.add(&model.Article{Title: "已有", Slug: "hello"})

	article, err := svc.Create(context.Background(), &dto.CreateArticleDTO{
		Title:   "Hello",
		Content: "正文",
	}, "uid", "站长")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if article.Slug != "hello-1" {
		t.Errorf("slug = %q, want hello-1", article.Slug)
	}

	again, err := svc.Create(context.Background(), &dto.CreateArticleDTO{
		Title:   "Hello",
		Content: "正文",
	}, "uid", "站长")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if again.Slug != "hello-2" {
		t.Errorf("slug = %q, want hello-2", again.Slug)
	}
}

func TestCreatePublishedArticleSetsPublishedAt(t *testing.T) {
	svc, _, _ := newArticleFixture()

	article, err := svc.Create(context.Background(), &dto.CreateArticleDTO{
		Title:   "发布就生效",
		Slug:    "published-now",
		Content: "正文",
		Status:  model.ArticleStatusPublished,
	}, "uid", "站长")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if article.PublishedAt == nil {
		t.Error("published article should carry publishedAt")
	}
}

func TestUpdateArticleFirstPublishSetsPublishedAt(t *testing.T) {
	svc, articleRepo, _ := newArticleFixture()
	draft := articleRepo.add(&model.Article{Title: "草稿", Slug: "draft-post", Status: model.ArticleStatusDraft})

	published := model.ArticleStatusPublished
	updated, err := svc.Update(context.Background(), draft.ID.Hex(), &dto.UpdateArticleDTO{Status: &published})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != model.ArticleStatusPublished {
		t.Errorf("status = %q", updated.Status)
	}
	if updated.PublishedAt == nil {
		t.Error("first publish should set publishedAt")
	}
}

func TestDeleteArticleCascades(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	categoryRepo := newFakeCategoryRepo()
	viewRepo := &fakeViewRepo{}
	reactionRepo := &fakeReactionRepo{}
	commentRepo := newFakeCommentRepo()
	svc := NewArticleService(articleRepo, categoryRepo, viewRepo, reactionRepo, commentRepo)

	article := articleRepo.add(&model.Article{Title: "待删除", Slug: "to-delete"})
	_ = viewRepo.Create(context.Background(), &model.PageView{ArticleID: article.ID, IP: "1.1.1.1"})
	_ = reactionRepo.Insert(context.Background(), &model.Reaction{ArticleID: article.ID, Emoji: "like"})
	_ = commentRepo.Create(context.Background(), &model.Comment{ArticleID: article.ID, Content: "评论"})

	if err := svc.Delete(context.Background(), article.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := articleRepo.articles[article.ID]; ok {
		t.Error("article should be deleted")
	}
	if len(viewRepo.created) != 0 {
		t.Error("page views should be cleaned up")
	}
	if len(reactionRepo.inserted) != 0 {
		t.Error("reactions should be cleaned up")
	}
	if len(commentRepo.comments) != 0 {
		t.Error("comments should be cleaned up")
	}
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	svc, articleRepo, _ := newArticleFixture()
	articleRepo.add(&model.Article{Title: "草稿", Slug: "secret-draft", Status: model.ArticleStatusDraft})

	if _, err := svc.GetBySlug(context.Background(), "secret-draft"); err != ErrArticleNotFound {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}
