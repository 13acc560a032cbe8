package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow/gen/ent"
	entproject "github.com/docflowhq/docflow/gen/ent/project"
	"github.com/docflowhq/docflow/internal/entity"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{
		client: client,
		logger: logger,
	}
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	row, err := r.client.Project.Query().
		Where(entproject.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toProject(row), nil
}

func (r *projectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Project.Query().Where(entproject.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check project existence", "project_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	builder := r.client.Project.Create().
		SetTenantID(project.TenantID).
		SetName(project.Name).
		SetCheckScanningMode(project.CheckScanningMode)
	if project.FileNamingTemplate != "" {
		builder = builder.SetFileNamingTemplate(project.FileNamingTemplate)
	}
	if project.ExtractionFields != nil {
		builder = builder.SetExtractionFields(project.ExtractionFields)
	}
	if project.TableExtractionFields != nil {
		builder = builder.SetTableExtractionFields(project.TableExtractionFields)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "name", project.Name, "error", err)
		return nil, err
	}
	return toProject(row), nil
}
