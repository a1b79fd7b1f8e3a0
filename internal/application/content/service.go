// Package content stores and retrieves the portfolio's structured
// content. Every record is a JSON value in the key-value store under a
// collection prefix; listings are prefix scans sorted server-side.
package content

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vitrine/internal/infrastructure/kv"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/services/markdown"
)

type Service struct {
	store    kv.Store
	renderer markdown.Renderer
	validate *validator.Validate
	logger   logger.Interface

	now func() time.Time
}

func NewService(store kv.Store, renderer markdown.Renderer, log logger.Interface) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		validate: validator.New(),
		logger:   log.Named("content"),
		now:      time.Now,
	}
}

// upstream converts a store failure into the generic client-facing
// error after logging the original detail.
func (s *Service) upstream(op string, err error) error {
	s.logger.Error("key-value store operation failed", "op", op, "error", err)
	return errors.NewUpstreamError("content store")
}

func (s *Service) save(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.NewInternalError("failed to encode record", err.Error())
	}
	if err := s.store.Set(ctx, key, data, 0); err != nil {
		return s.upstream("set", err)
	}
	return nil
}

func decodeAll[T any](entries []kv.Entry) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var rec T
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			// Skip corrupt records rather than failing the listing
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (s *Service) get(ctx context.Context, key string, record any) error {
	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		return s.upstream("get", err)
	}
	if !found {
		return errors.NewNotFoundError("record not found")
	}
	if err := json.Unmarshal(data, record); err != nil {
		return errors.NewInternalError("failed to decode record", err.Error())
	}
	return nil
}

// ---- Projects ----

func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	entries, err := s.store.ScanPrefix(ctx, projectPrefix)
	if err != nil {
		return nil, s.upstream("scan", err)
	}
	projects := decodeAll[Project](entries)
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].SortOrder != projects[j].SortOrder {
			return projects[i].SortOrder < projects[j].SortOrder
		}
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := s.get(ctx, projectPrefix+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) CreateProject(ctx context.Context, p Project) (*Project, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, errors.NewValidationError("invalid project", err.Error())
	}
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt
	if err := s.save(ctx, projectPrefix+p.ID, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) UpdateProject(ctx context.Context, id string, p Project) (*Project, error) {
	existing, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(p); err != nil {
		return nil, errors.NewValidationError("invalid project", err.Error())
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()
	if err := s.save(ctx, projectPrefix+id, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, projectPrefix+id); err != nil {
		return s.upstream("delete", err)
	}
	return nil
}

// ---- Testimonials ----

func (s *Service) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	entries, err := s.store.ScanPrefix(ctx, testimonialPrefix)
	if err != nil {
		return nil, s.upstream("scan", err)
	}
	items := decodeAll[Testimonial](entries)
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Service) CreateTestimonial(ctx context.Context, tm Testimonial) (*Testimonial, error) {
	if err := s.validate.Struct(tm); err != nil {
		return nil, errors.NewValidationError("invalid testimonial", err.Error())
	}
	tm.ID = uuid.NewString()
	tm.CreatedAt = s.now()
	tm.UpdatedAt = tm.CreatedAt
	if err := s.save(ctx, testimonialPrefix+tm.ID, tm); err != nil {
		return nil, err
	}
	return &tm, nil
}

func (s *Service) UpdateTestimonial(ctx context.Context, id string, tm Testimonial) (*Testimonial, error) {
	var existing Testimonial
	if err := s.get(ctx, testimonialPrefix+id, &existing); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(tm); err != nil {
		return nil, errors.NewValidationError("invalid testimonial", err.Error())
	}
	tm.ID = existing.ID
	tm.CreatedAt = existing.CreatedAt
	tm.UpdatedAt = s.now()
	if err := s.save(ctx, testimonialPrefix+id, tm); err != nil {
		return nil, err
	}
	return &tm, nil
}

func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	var existing Testimonial
	if err := s.get(ctx, testimonialPrefix+id, &existing); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, testimonialPrefix+id); err != nil {
		return s.upstream("delete", err)
	}
	return nil
}

// ---- Achievements ----

func (s *Service) ListAchievements(ctx context.Context) ([]Achievement, error) {
	entries, err := s.store.ScanPrefix(ctx, achievementPrefix)
	if err != nil {
		return nil, s.upstream("scan", err)
	}
	items := decodeAll[Achievement](entries)
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Service) CreateAchievement(ctx context.Context, a Achievement) (*Achievement, error) {
	if err := s.validate.Struct(a); err != nil {
		return nil, errors.NewValidationError("invalid achievement", err.Error())
	}
	a.ID = uuid.NewString()
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt
	if err := s.save(ctx, achievementPrefix+a.ID, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) UpdateAchievement(ctx context.Context, id string, a Achievement) (*Achievement, error) {
	var existing Achievement
	if err := s.get(ctx, achievementPrefix+id, &existing); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(a); err != nil {
		return nil, errors.NewValidationError("invalid achievement", err.Error())
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = s.now()
	if err := s.save(ctx, achievementPrefix+id, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) DeleteAchievement(ctx context.Context, id string) error {
	var existing Achievement
	if err := s.get(ctx, achievementPrefix+id, &existing); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, achievementPrefix+id); err != nil {
		return s.upstream("delete", err)
	}
	return nil
}

// ---- Site text ----

func (s *Service) GetSiteText(ctx context.Context, key string) (*SiteText, error) {
	var st SiteText
	if err := s.get(ctx, siteTextPrefix+key, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Service) ListSiteTexts(ctx context.Context) ([]SiteText, error) {
	entries, err := s.store.ScanPrefix(ctx, siteTextPrefix)
	if err != nil {
		return nil, s.upstream("scan", err)
	}
	items := decodeAll[SiteText](entries)
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

// SetSiteText upserts a block of site copy; the sanitized HTML is
// rendered once at write time and stored alongside the markdown.
func (s *Service) SetSiteText(ctx context.Context, key, md string) (*SiteText, error) {
	st := SiteText{
		Key:      key,
		Markdown: md,
	}
	if err := s.validate.Struct(st); err != nil {
		return nil, errors.NewValidationError("invalid site text", err.Error())
	}

	html, err := s.renderer.Render(md)
	if err != nil {
		return nil, errors.NewValidationError("invalid markdown", err.Error())
	}
	st.HTML = html
	st.UpdatedAt = s.now()

	if err := s.save(ctx, siteTextPrefix+key, st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Service) DeleteSiteText(ctx context.Context, key string) error {
	if _, err := s.GetSiteText(ctx, key); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, siteTextPrefix+key); err != nil {
		return s.upstream("delete", err)
	}
	return nil
}
