package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/labelpress/pkg/cache"
	"github.com/ghuser/labelpress/pkg/events"
	"github.com/ghuser/labelpress/pkg/logger"
	labeldomain "github.com/ghuser/labelpress/services/label/domain"
	"github.com/ghuser/labelpress/services/label/domain/barcode"
	domainevents "github.com/ghuser/labelpress/services/label/domain/events"
	"github.com/ghuser/labelpress/services/label/domain/render"
	productdomain "github.com/ghuser/labelpress/services/product/domain"
	productmodels "github.com/ghuser/labelpress/services/product/domain/models"
)

// ProductSource is the slice of the product context the label service reads
// when assembling a batch from product IDs.
type ProductSource interface {
	GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*productmodels.Product, error)
}

// ProductBatchItem selects a product and a label count for batch assembly.
type ProductBatchItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// BatchResult is the outcome of a batch render: the assembled document plus
// the identifier under which it is cached for later download.
type BatchResult struct {
	ID         uuid.UUID
	Document   string
	LabelCount int
}

// LabelService orchestrates barcode validation, internal code minting, and
// label rendering. Rendering itself is pure domain logic; this layer adds
// document caching, event publishing, and product lookups.
type LabelService struct {
	renderer  *render.Renderer
	generator *barcode.Generator
	prefix    string
	docs      *pkgcache.DocumentCache
	bus       *events.EventBus
	products  ProductSource
	log       logger.Logger
}

// NewLabelService wires a LabelService from its collaborators. docs, bus, and
// products may be nil in tests; the corresponding features degrade gracefully.
func NewLabelService(
	renderer *render.Renderer,
	generator *barcode.Generator,
	prefix string,
	docs *pkgcache.DocumentCache,
	bus *events.EventBus,
	products ProductSource,
	log logger.Logger,
) *LabelService {
	return &LabelService{
		renderer:  renderer,
		generator: generator,
		prefix:    prefix,
		docs:      docs,
		bus:       bus,
		products:  products,
		log:       log,
	}
}

// Validate classifies a barcode against the supported symbologies.
// The result is a value, not an error: invalid input is a normal answer.
func (s *LabelService) Validate(code string) barcode.ValidationResult {
	return barcode.Validate(code, s.prefix)
}

// MintCode generates a unique internal code for the current session.
func (s *LabelService) MintCode() (string, error) {
	return s.generator.Generate(s.prefix)
}

// IsMinted reports whether code was minted during the current session.
func (s *LabelService) IsMinted(code string) bool {
	return s.generator.IsGenerated(code)
}

// ClearCodes resets the session registry.
func (s *LabelService) ClearCodes() {
	s.generator.Clear()
}

// RenderLabel renders a single label as an SVG fragment.
func (s *LabelService) RenderLabel(req render.LabelRequest) (string, error) {
	return s.renderer.RenderLabel(req)
}

// RenderBatch assembles a printable HTML document from the given items,
// caches it under a fresh batch ID, and publishes BatchRenderedEvent.
// Cache and publish failures are logged, not fatal: the caller already
// holds the document.
func (s *LabelService) RenderBatch(ctx context.Context, items []render.BatchItem, size render.LabelSize) (*BatchResult, error) {
	doc, err := s.renderer.AssembleBatch(items, size)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		ID:         uuid.New(),
		Document:   doc,
		LabelCount: render.CountLabels(items),
	}

	if s.docs != nil {
		if err := s.docs.Set(ctx, result.ID, doc); err != nil {
			s.log.ErrorContext(ctx, "failed to cache batch document", "batch_id", result.ID, "error", err)
		}
	}

	if err := s.publishBatchRendered(ctx, result, size); err != nil {
		s.log.ErrorContext(ctx, "failed to publish batch event", "batch_id", result.ID, "error", err)
	}

	return result, nil
}

// GetBatchDocument fetches a previously rendered batch document from the
// cache. Returns ErrBatchNotFound once the cache entry has expired.
func (s *LabelService) GetBatchDocument(ctx context.Context, batchID uuid.UUID) (string, error) {
	if s.docs == nil {
		return "", labeldomain.ErrBatchNotFound
	}
	doc, err := s.docs.Get(ctx, batchID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %s", labeldomain.ErrBatchNotFound, batchID)
		}
		return "", fmt.Errorf("get batch document: %w", err)
	}
	return doc, nil
}

// RenderBatchForProducts assembles a batch from catalog products. Item order
// follows the request order, and every requested product must exist.
func (s *LabelService) RenderBatchForProducts(ctx context.Context, orgID uuid.UUID, reqs []ProductBatchItem, size render.LabelSize) (*BatchResult, error) {
	if len(reqs) == 0 {
		return nil, labeldomain.ErrEmptyBatch
	}

	ids := make([]uuid.UUID, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ProductID)
	}

	products, err := s.products.GetByIDs(ctx, orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	byID := make(map[uuid.UUID]*productmodels.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]render.BatchItem, 0, len(reqs))
	for _, r := range reqs {
		p, ok := byID[r.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", productdomain.ErrProductNotFound, r.ProductID)
		}
		items = append(items, render.BatchItem{
			ProductID:   p.ID.String(),
			Barcode:     p.Barcode,
			ProductName: p.Name.String(),
			Price:       p.Price.Int64(),
			Quantity:    r.Quantity,
		})
	}

	return s.RenderBatch(ctx, items, size)
}

func (s *LabelService) publishBatchRendered(ctx context.Context, result *BatchResult, size render.LabelSize) error {
	if s.bus == nil {
		return nil
	}
	evt := domainevents.BatchRenderedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BatchID:    result.ID,
		LabelCount: result.LabelCount,
		Size:       string(size),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return s.bus.Publish(ctx, domainevents.TopicBatchRendered, message.NewMessage(watermill.NewUUID(), payload))
}
