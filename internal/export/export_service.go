package export

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"hr-records/internal/employee"
	exporterrors "hr-records/internal/export/errors"
	"hr-records/internal/record"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	ExportJSON(ctx context.Context, employeeID string) (File, error)
	ExportPDF(ctx context.Context, employeeID string) (File, error)
}

type service struct {
	employees employee.Service
	records   record.Service
	renderer  Renderer
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(employees employee.Service, records record.Service, renderer Renderer, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{
		employees: employees,
		records:   records,
		renderer:  renderer,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// Filename percent-encodes name so it stays valid inside a quoted header value.
func Filename(lastName, ext string) string {
	return url.PathEscape(lastName + ext)
}

func (s *service) ExportJSON(ctx context.Context, employeeID string) (File, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return File{}, exporterrors.ErrMissingEmployeeID
	}
	return s.coalesce(ctx, "json:"+employeeID, func(ctx context.Context) (File, error) {
		empl, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			return File{}, err
		}

		doc := newDocument(empl)
		for _, kind := range record.Kinds() {
			entries, err := s.records.EntriesForEmployee(ctx, kind, employeeID, record.Chronological)
			if err != nil {
				return File{}, err
			}
			for _, e := range entries {
				doc.add(e)
			}
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		if err := enc.Encode(doc); err != nil {
			s.logger.Error("encode json export failed", zap.String("employee_id", employeeID), zap.Error(err))
			return File{}, exporterrors.ErrRenderFailed.WithCause(err)
		}

		s.logger.Info("json export built",
			zap.String("employee_id", employeeID),
			zap.Int("vacations", len(doc.Vacations)),
			zap.Int("business_trips", len(doc.BusinessTrips)),
			zap.Int("sick_leaves", len(doc.SickLeaves)),
		)
		return File{
			Filename:    Filename(empl.LastName, ".json"),
			ContentType: ContentTypeJSON,
			Body:        buf.Bytes(),
		}, nil
	})
}

func (s *service) ExportPDF(ctx context.Context, employeeID string) (File, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return File{}, exporterrors.ErrMissingEmployeeID
	}
	return s.coalesce(ctx, "pdf:"+employeeID, func(ctx context.Context) (File, error) {
		empl, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			return File{}, err
		}

		// Grouped by kind, each group newest first.
		var entries []record.Entry
		for _, kind := range record.Kinds() {
			group, err := s.records.EntriesForEmployee(ctx, kind, employeeID, record.RecentFirst)
			if err != nil {
				return File{}, err
			}
			entries = append(entries, group...)
		}

		body, err := s.renderer.Render(Layout(empl, entries))
		if err != nil {
			s.logger.Error("render pdf export failed", zap.String("employee_id", employeeID), zap.Error(err))
			return File{}, exporterrors.ErrRenderFailed.WithCause(err)
		}

		s.logger.Info("pdf export built",
			zap.String("employee_id", employeeID),
			zap.Int("records", len(entries)),
			zap.Int("bytes", len(body)),
		)
		return File{
			Filename:    Filename(empl.LastName, ".pdf"),
			ContentType: ContentTypePDF,
			Body:        body,
		}, nil
	})
}

// coalesce shares one build between concurrent requests for the same key.
// The build runs detached from any single caller's cancellation; a caller
// whose ctx ends stops waiting without failing the others.
func (s *service) coalesce(ctx context.Context, key string, build func(context.Context) (File, error)) (File, error) {
	buildCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(key, func() (any, error) {
		return build(buildCtx)
	})

	select {
	case <-ctx.Done():
		s.logger.Debug("export caller went away", zap.String("key", key), zap.Error(ctx.Err()))
		return File{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return File{}, res.Err
		}
		if res.Shared {
			s.logger.Debug("export shared with concurrent request", zap.String("key", key))
		}
		return res.Val.(File), nil
	}
}
