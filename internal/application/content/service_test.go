package content

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/infrastructure/kv"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/services/markdown"
)

func setupService(t *testing.T) *Service {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return NewService(kv.NewRedisStore(client), markdown.NewRenderer(), logger.NewLogger())
}

func TestService_ProjectLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, Project{
		Title:   "Weather Dashboard",
		Summary: "Realtime weather visualization",
		Tech:    []string{"go", "svelte"},
		RepoURL: "https://example.com/repo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weather Dashboard", got.Title)

	updated, err := svc.UpdateProject(ctx, created.ID, Project{
		Title:    "Weather Dashboard v2",
		Featured: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.Featured)

	require.NoError(t, svc.DeleteProject(ctx, created.ID))

	_, err = svc.GetProject(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_CreateProjectValidation(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateProject(context.Background(), Project{Title: ""})
	assert.True(t, errors.IsValidationError(err), "missing title must be rejected")

	_, err = svc.CreateProject(context.Background(), Project{
		Title:   "x",
		RepoURL: "not a url",
	})
	assert.True(t, errors.IsValidationError(err), "malformed repo url must be rejected")
}

func TestService_ListProjectsSorted(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, p := range []Project{
		{Title: "third", SortOrder: 30},
		{Title: "first", SortOrder: 10},
		{Title: "second", SortOrder: 20},
	} {
		_, err := svc.CreateProject(ctx, p)
		require.NoError(t, err)
	}

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
	assert.Equal(t, "third", projects[2].Title)
}

func TestService_TestimonialLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateTestimonial(ctx, Testimonial{
		Author: "Ada",
		Role:   "CTO",
		Quote:  "Delivered ahead of schedule.",
	})
	require.NoError(t, err)

	items, err := svc.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	updated, err := svc.UpdateTestimonial(ctx, created.ID, Testimonial{
		Author: "Ada L.",
		Quote:  "Delivered ahead of schedule.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Author)

	require.NoError(t, svc.DeleteTestimonial(ctx, created.ID))

	items, err = svc.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_AchievementLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateAchievement(ctx, Achievement{
		Title:     "CKA",
		Issuer:    "CNCF",
		AwardedOn: "2024-11-02",
	})
	require.NoError(t, err)

	_, err = svc.CreateAchievement(ctx, Achievement{
		Title:     "bad date",
		AwardedOn: "02/11/2024",
	})
	assert.True(t, errors.IsValidationError(err))

	require.NoError(t, svc.DeleteAchievement(ctx, created.ID))
}

func TestService_SiteTextRendersMarkdown(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	st, err := svc.SetSiteText(ctx, "about", "# About me\n\nI build **things**.")
	require.NoError(t, err)
	assert.Contains(t, st.HTML, "<h1")
	assert.Contains(t, st.HTML, "<strong>things</strong>")

	got, err := svc.GetSiteText(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, st.HTML, got.HTML)
	assert.Equal(t, "# About me\n\nI build **things**.", got.Markdown)
}

func TestService_SiteTextSanitizesHTML(t *testing.T) {
	svc := setupService(t)

	st, err := svc.SetSiteText(context.Background(), "footer", `hi <script>alert(1)</script>`)
	require.NoError(t, err)
	assert.NotContains(t, st.HTML, "<script>")
}

func TestService_SiteTextListAndDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.SetSiteText(ctx, "hero", "intro")
	require.NoError(t, err)
	_, err = svc.SetSiteText(ctx, "about", "story")
	require.NoError(t, err)

	items, err := svc.ListSiteTexts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "about", items[0].Key)
	assert.Equal(t, "hero", items[1].Key)

	require.NoError(t, svc.DeleteSiteText(ctx, "hero"))

	_, err = svc.GetSiteText(ctx, "hero")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_UpdateMissingProject(t *testing.T) {
	svc := setupService(t)

	_, err := svc.UpdateProject(context.Background(), "nope", Project{Title: "x"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestService_TimestampsAdvanceOnUpdate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	created, err := svc.CreateProject(ctx, Project{Title: "x"})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Hour) }

	updated, err := svc.UpdateProject(ctx, created.ID, Project{Title: "y"})
	require.NoError(t, err)
	assert.Equal(t, base, updated.CreatedAt)
	assert.Equal(t, base.Add(time.Hour), updated.UpdatedAt)
}
