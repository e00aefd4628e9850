package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"yellbook/internal/models/db_models"
	"yellbook/internal/models/request_models"
	"yellbook/internal/models/response_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/cache"
	"yellbook/pkg/utils"
)

const (
	listCacheKey     = "yellow-books:list:all"
	listCachePattern = "yellow-books:list:*"
	entryCachePrefix = "yellow-books:entry:"
	pageCacheTTL     = 5 * time.Minute
)

type EntryServiceInterface interface {
	ListEntries(ctx context.Context, query request_models.ListEntriesQuery) ([]response_models.Entry, error)
	GetEntryByID(ctx context.Context, id string) (response_models.Entry, error)
	ListCategories(ctx context.Context) ([]response_models.Category, error)

	CreateEntry(ctx context.Context, req request_models.CreateEntryRequest) (uuid.UUID, error)
	UpdateEntry(ctx context.Context, req request_models.UpdateEntryRequest) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	Revalidate(ctx context.Context, req request_models.RevalidateRequest) []string
}

type EntryService struct {
	entryRepo     repositories.EntryRepository
	categoryRepo  repositories.CategoryRepository
	tagRepo       repositories.TagRepository
	embeddingRepo repositories.EntryEmbeddingRepository
	cache         *cache.Client
}

func NewEntryService(
	entryRepo repositories.EntryRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	embeddingRepo repositories.EntryEmbeddingRepository,
	cacheClient *cache.Client,
) EntryServiceInterface {
	return &EntryService{
		entryRepo:     entryRepo,
		categoryRepo:  categoryRepo,
		tagRepo:       tagRepo,
		embeddingRepo: embeddingRepo,
		cache:         cacheClient,
	}
}

func (s *EntryService) ListEntries(ctx context.Context, query request_models.ListEntriesQuery) ([]response_models.Entry, error) {
	if query.OrganizationType != "" && !db_models.ValidKind(query.OrganizationType) {
		return nil, utils.ErrInvalidKind
	}

	// Only the unfiltered collection is page-cached; filtered queries always
	// hit the database.
	unfiltered := query == request_models.ListEntriesQuery{}
	if unfiltered {
		if raw, err := s.cache.Get(ctx, listCacheKey); err == nil {
			var cached []response_models.Entry
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	entries, err := s.entryRepo.List(ctx, repositories.EntryFilter{
		Search:       query.Search,
		CategorySlug: query.CategorySlug,
		Kind:         query.OrganizationType,
		Tag:          query.Tag,
	})
	if err != nil {
		log.Printf("Error listing entries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Entry, 0, len(entries))
	for i := range entries {
		responses = append(responses, mapEntryToContract(&entries[i]))
	}

	if unfiltered {
		if encoded, err := json.Marshal(responses); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, encoded, pageCacheTTL); err != nil {
				log.Printf("List cache save error: %v", err)
			}
		}
	}

	return responses, nil
}

func (s *EntryService) GetEntryByID(ctx context.Context, id string) (response_models.Entry, error) {
	cacheKey := entryCachePrefix + id
	if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
		var cached response_models.Entry
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return cached, nil
		}
	}

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching entry: %v", err)
		return response_models.Entry{}, utils.ErrDatabaseError
	}
	if entry == nil {
		return response_models.Entry{}, utils.ErrEntryNotFound
	}

	response := mapEntryToContract(entry)
	if encoded, err := json.Marshal(response); err == nil {
		if err := s.cache.Set(ctx, cacheKey, encoded, pageCacheTTL); err != nil {
			log.Printf("Entry cache save error: %v", err)
		}
	}

	return response, nil
}

func (s *EntryService) ListCategories(ctx context.Context) ([]response_models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Category, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response_models.Category{
			ID:          category.ID.String(),
			Slug:        category.Slug,
			Name:        category.Name,
			Description: category.Description,
			CreatedAt:   category.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   category.UpdatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *EntryService) CreateEntry(ctx context.Context, req request_models.CreateEntryRequest) (uuid.UUID, error) {
	entry, err := s.buildEntry(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		log.Printf("Error creating entry: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	s.invalidateCollection(ctx)
	return id, nil
}

func (s *EntryService) UpdateEntry(ctx context.Context, req request_models.UpdateEntryRequest) error {
	existing, err := s.entryRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching entry: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEntryNotFound
	}

	updated, err := s.buildEntry(ctx, req.CreateEntryRequest)
	if err != nil {
		return err
	}
	updated.BaseModel = existing.BaseModel

	if err := s.entryRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating entry: %v", err)
		return utils.ErrDatabaseError
	}

	// The stored embedding no longer matches the text; drop it so the next
	// batch run re-embeds this entry.
	if err := s.embeddingRepo.DeleteByEntryID(ctx, req.ID.String()); err != nil {
		log.Printf("Error dropping stale embedding: %v", err)
	}

	s.invalidateEntry(ctx, req.ID.String())
	s.invalidateCollection(ctx)
	return nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	existing, err := s.entryRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching entry: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEntryNotFound
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting entry: %v", err)
		return utils.ErrDatabaseError
	}

	if err := s.embeddingRepo.DeleteByEntryID(ctx, id.String()); err != nil {
		log.Printf("Error deleting embedding row: %v", err)
	}

	s.invalidateEntry(ctx, id.String())
	s.invalidateCollection(ctx)
	return nil
}

// Revalidate drops cached pages per the webhook payload and reports which
// cache tags were touched.
func (s *EntryService) Revalidate(ctx context.Context, req request_models.RevalidateRequest) []string {
	var tags []string

	if req.ID != "" {
		s.invalidateEntry(ctx, req.ID)
		tags = append(tags, "yellow-book:"+req.ID)
	}

	if req.Collection == nil || *req.Collection {
		s.invalidateCollection(ctx)
		tags = append(tags, "yellow-books")
	}

	for _, tag := range req.Tags {
		if tag == "" {
			continue
		}
		if err := s.cache.Delete(ctx, tag); err != nil {
			log.Printf("Error deleting cache tag %s: %v", tag, err)
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}

func (s *EntryService) buildEntry(ctx context.Context, req request_models.CreateEntryRequest) (*db_models.Entry, error) {
	if !db_models.ValidKind(req.Kind) {
		return nil, utils.ErrInvalidKind
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		log.Printf("Error fetching category: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	tagIDs := make([]uuid.UUID, 0, len(req.TagIDs))
	for _, raw := range req.TagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		tagIDs = append(tagIDs, id)
	}
	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		log.Printf("Error fetching tags: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if len(tags) != len(tagIDs) {
		return nil, utils.ErrTagNotFound
	}

	return &db_models.Entry{
		Name:           req.Name,
		ShortName:      req.ShortName,
		Summary:        req.Summary,
		Description:    req.Description,
		StreetAddress:  req.StreetAddress,
		District:       req.District,
		Province:       req.Province,
		Phone:          req.Phone,
		SecondaryPhone: req.SecondaryPhone,
		Email:          req.Email,
		Website:        req.Website,
		Facebook:       req.Facebook,
		Instagram:      req.Instagram,
		GoogleMapURL:   req.GoogleMapURL,
		Hours:          req.Hours,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Kind:           req.Kind,
		CategoryID:     category.ID,
		Category:       *category,
		Tags:           tags,
	}, nil
}

func (s *EntryService) invalidateEntry(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, entryCachePrefix+id); err != nil {
		log.Printf("Error invalidating entry cache: %v", err)
	}
}

func (s *EntryService) invalidateCollection(ctx context.Context) {
	if _, err := s.cache.DeletePattern(ctx, listCachePattern); err != nil {
		log.Printf("Error invalidating list cache: %v", err)
	}
}

// mapEntryToContract flattens an entry row into the public contract shape.
// Contacts are emitted in a fixed order with their display labels.
func mapEntryToContract(entry *db_models.Entry) response_models.Entry {
	contacts := []response_models.Contact{
		{Type: "phone", Value: entry.Phone, Label: "Утас"},
	}
	if entry.SecondaryPhone != "" {
		contacts = append(contacts, response_models.Contact{Type: "phone", Value: entry.SecondaryPhone, Label: "Нэмэлт утас"})
	}
	if entry.Email != "" {
		contacts = append(contacts, response_models.Contact{Type: "email", Value: entry.Email, Label: "Имэйл"})
	}
	if entry.Website != "" {
		contacts = append(contacts, response_models.Contact{Type: "website", Value: entry.Website, Label: "Вэб сайт"})
	}
	if entry.Facebook != "" {
		contacts = append(contacts, response_models.Contact{Type: "facebook", Value: entry.Facebook, Label: "Facebook"})
	}
	if entry.Instagram != "" {
		contacts = append(contacts, response_models.Contact{Type: "instagram", Value: entry.Instagram, Label: "Instagram"})
	}
	if entry.GoogleMapURL != "" {
		contacts = append(contacts, response_models.Contact{Type: "map", Value: entry.GoogleMapURL, Label: "Газрын зураг"})
	}

	var coordinates *response_models.Coordinates
	if entry.Latitude != nil && entry.Longitude != nil {
		coordinates = &response_models.Coordinates{
			Latitude:  *entry.Latitude,
			Longitude: *entry.Longitude,
			MapURL:    entry.GoogleMapURL,
		}
	}

	tags := make([]response_models.TagResponse, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		tags = append(tags, response_models.TagResponse{ID: tag.ID.String(), Label: tag.Label})
	}

	return response_models.Entry{
		ID:          entry.ID.String(),
		Name:        entry.Name,
		ShortName:   entry.ShortName,
		Summary:     entry.Summary,
		Description: entry.Description,
		Address: response_models.Address{
			StreetAddress: entry.StreetAddress,
			District:      entry.District,
			Province:      entry.Province,
		},
		Contacts: contacts,
		Category: response_models.CategoryRef{
			ID:   entry.Category.ID.String(),
			Name: entry.Category.Name,
			Slug: entry.Category.Slug,
		},
		Tags:             tags,
		OrganizationType: entry.Kind,
		Hours:            entry.Hours,
		Coordinates:      coordinates,
		CreatedAt:        entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        entry.UpdatedAt.Format(time.RFC3339),
	}
}
