package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/persistence/models"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (documents.DocumentRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, document *documents.Document) error {
	// Validate domain entity (business rules)
	if err := document.Validate(); err != nil {
		return fmt.Errorf("%w: %v", documents.ErrInvalidArgument, err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	r.logger.Info("Created document with id ", document.ID)
	return nil
}

func (r *gormDocumentRepository) List(ctx context.Context, query *documents.DocumentQuery) ([]*documents.Document, error) {
	if query == nil {
		query = &documents.DocumentQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid query parameters: %v", documents.ErrInvalidArgument, err)
	}

	var modelList []*models.DocumentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.DocumentModel{})

	// Apply filters
	if query.Country != "" {
		dbQuery = dbQuery.Where("country = ?", query.Country)
	}
	if query.DocumentType != "" {
		dbQuery = dbQuery.Where("document_type = ?", query.DocumentType)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.IDNumber != "" {
		dbQuery = dbQuery.Where("id_number = ?", query.IDNumber)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	// Sorting; SortBy is restricted to known columns by Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	domainList := make([]*documents.Document, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", documents.ErrNotFound, documentID)
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) UpdateByID(ctx context.Context, document *documents.Document) error {
	if err := document.Validate(); err != nil {
		return fmt.Errorf("%w: %v", documents.ErrInvalidArgument, err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(document)

	result := r.db.WithContext(ctx).Model(&models.DocumentModel{ID: document.ID}).Select("*").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", documents.ErrNotFound, document.ID)
	}

	r.logger.Info("Updated document with id ", document.ID)
	return nil
}

func (r *gormDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", documentID).Delete(&models.DocumentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", documents.ErrNotFound, documentID)
	}

	r.logger.Info("Deleted document with id ", documentID)
	return nil
}
