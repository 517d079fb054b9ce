package service

import (
	"Wildsalt/internal/api/config"
	"Wildsalt/internal/model"
	"Wildsalt/internal/repository"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const feedItemLimit = 50

type FeedService interface {
	// BuildRSS 生成 RSS 2.0 文档
	BuildRSS(ctx context.Context) ([]byte, error)
}

type feedServiceImpl struct {
	articleRepo repository.ArticleRepo
	settingRepo repository.SettingRepo
}

func NewFeedService(articleRepo repository.ArticleRepo, settingRepo repository.SettingRepo) FeedService {
	return &feedServiceImpl{
		articleRepo: articleRepo,
		settingRepo: settingRepo,
	}
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category,omitempty"`
}

func (s *feedServiceImpl) BuildRSS(ctx context.Context) ([]byte, error) {
	siteURL := strings.TrimRight(config.Cfg.Site.URL, "/")

	title := "野盐"
	description := ""
	settings, err := s.settingRepo.ListAll(ctx)
	if err == nil {
		for _, setting := range settings {
			switch setting.Key {
			case model.SettingSiteName:
				if setting.Value != "" {
					title = setting.Value
				}
			case model.SettingSiteDescription:
				description = setting.Value
			}
		}
	}

	articles, err := s.articleRepo.ListPublished(ctx, feedItemLimit)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}

	items := make([]rssItem, 0, len(articles))
	for _, article := range articles {
		published := article.CreatedAt
		if article.PublishedAt != nil {
			published = *article.PublishedAt
		}
		link := siteURL + "/posts/" + article.Slug
		summary := article.Summary
		if summary == "" {
			summary = truncateRunes(article.Content, 200)
		}
		items = append(items, rssItem{
			Title:       article.Title,
			Link:        link,
			GUID:        link,
			Description: summary,
			PubDate:     published.Format(time.RFC1123Z),
			Categories:  article.Tags,
		})
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:         title,
			Link:          siteURL,
			Description:   description,
			Language:      "zh-CN",
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("生成RSS失败: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
