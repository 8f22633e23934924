package search

import (
	"context"
	"log"

	"retreatly/internal/programs"
	"retreatly/internal/properties"
	"retreatly/internal/retreats"
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/constants"
	"retreatly/pkg/cache"

	"github.com/redis/go-redis/v9"
)

type Service interface {
	SearchRetreats(ctx context.Context, opts Options) Result
	SearchPrograms(ctx context.Context, opts Options) Result
}

type service struct {
	retreatRepo retreats.Repository
	programRepo programs.Repository
	config      *config.Config
	redisClient *redis.Client
}

func NewService(retreatRepo retreats.Repository, programRepo programs.Repository, cfg *config.Config) Service {
	return &service{
		retreatRepo: retreatRepo,
		programRepo: programRepo,
		config:      cfg,
		redisClient: cache.Client(),
	}
}

func (s *service) SearchRetreats(ctx context.Context, opts Options) Result {
	return s.executeSearch(ctx, "retreat", opts, func(ctx context.Context) ([]Item, error) {
		rows, err := s.retreatRepo.GetPublishedWithProperty(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(rows))
		for i := range rows {
			if opts.Category != "" && rows[i].Category != opts.Category {
				continue
			}
			resp := rows[i].ToResponse()
			items = append(items, Item{
				ID:       rows[i].ID.String(),
				Kind:     "retreat",
				Name:     rows[i].Name,
				Category: rows[i].Category,
				Property: itemProperty(rows[i].Property),
				Payload:  resp,
			})
		}
		return items, nil
	})
}

func (s *service) SearchPrograms(ctx context.Context, opts Options) Result {
	return s.executeSearch(ctx, "program", opts, func(ctx context.Context) ([]Item, error) {
		rows, err := s.programRepo.GetPublishedWithProperty(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(rows))
		for i := range rows {
			if opts.Category != "" && rows[i].Category != opts.Category {
				continue
			}
			resp := rows[i].ToResponse()
			items = append(items, Item{
				ID:       rows[i].ID.String(),
				Kind:     "program",
				Name:     rows[i].Name,
				Category: rows[i].Category,
				Property: itemProperty(rows[i].Property),
				Payload:  resp,
			})
		}
		return items, nil
	})
}

// executeSearch decides the output shape by option precedence: continent
// grouping first, then radius grouping, then plain pagination. Fetch failures
// are logged and folded into {OK:false, Type:"na", Data:[]}.
func (s *service) executeSearch(ctx context.Context, kind string, opts Options, fetch func(context.Context) ([]Item, error)) Result {
	if opts.Continent != "" {
		cacheKey := constants.BuildContinentSearchKey(kind, opts.Continent)

		var cached Result
		if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
			log.Printf("Cache HIT for continent search: %s", cacheKey)
			return cached
		}

		items, err := fetch(ctx)
		if err != nil {
			return s.failed(kind, err)
		}

		result := Result{OK: true, Type: "continent", Data: GroupByCountry(items, opts.Continent)}

		if err := setCache(ctx, s.redisClient, cacheKey, result, constants.TTL_SEARCH_CONTINENT); err != nil {
			log.Printf("Warning: failed to cache continent search: %v", err)
		}
		return result
	}

	if opts.Latitude != nil && opts.Longitude != nil {
		items, err := fetch(ctx)
		if err != nil {
			return s.failed(kind, err)
		}

		radius := s.config.Search.DefaultRadiusMiles
		if opts.RadiusMiles != nil {
			radius = *opts.RadiusMiles
		}

		groups := GroupByProperty(items, *opts.Latitude, *opts.Longitude, radius)
		return Result{OK: true, Type: "location", Data: groups}
	}

	items, err := fetch(ctx)
	if err != nil {
		return s.failed(kind, err)
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = s.config.Search.DefaultPageSize
	}

	return Result{OK: true, Type: "all", Data: PaginateItems(items, page, pageSize)}
}

func (s *service) failed(kind string, err error) Result {
	log.Printf("Error searching %ss: %v", kind, err)
	return Result{OK: false, Type: "na", Data: []Item{}, Error: "search failed"}
}

func itemProperty(p *properties.Property) ItemProperty {
	if p == nil {
		return ItemProperty{}
	}
	return ItemProperty{
		ID:      p.ID.String(),
		Name:    p.Name,
		City:    p.City,
		Country: p.Country,
		Lat:     p.Lat,
		Lng:     p.Lng,
	}
}
