package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dominions-mapgen/internal/redis"
)

const (
	nationsKey = "catalog:nations"
	unitsKey   = "catalog:units"
	metaKey    = "catalog:meta"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed catalog. Nations and units live in two
// hashes, nations keyed by "<era>:<name>" and units by dominion id.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func nationField(era dominions.Era, name string) string {
	return strconv.Itoa(int(era)) + ":" + name
}

func unitField(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}

func (r *redisRepository) GetNation(ctx context.Context, input GetNationInput) (*GetNationOutput, error) {
	if err := validateGetNation(input); err != nil {
		return nil, err
	}

	result, err := r.client.HGet(ctx, nationsKey, nationField(input.Era, input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("nation %s not found", dominions.FactionRef{Era: input.Era, Name: input.Name})
		}
		return nil, errors.Wrapf(err, "failed to get nation")
	}

	var nation dominions.Nation
	if err := json.Unmarshal([]byte(result), &nation); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal nation")
	}

	return &GetNationOutput{Nation: &nation}, nil
}

func (r *redisRepository) UnitExists(ctx context.Context, input UnitExistsInput) (*UnitExistsOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errUnitID)
	}

	exists, err := r.client.HExists(ctx, unitsKey, unitField(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check unit")
	}

	return &UnitExistsOutput{Exists: exists}, nil
}

func (r *redisRepository) ListNations(ctx context.Context, input ListNationsInput) (*ListNationsOutput, error) {
	values, err := r.client.HVals(ctx, nationsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list nations")
	}

	filter := moddedSet(input.Modded)
	nations := make([]*dominions.Nation, 0, len(values))
	for _, value := range values {
		var nation dominions.Nation
		if err := json.Unmarshal([]byte(value), &nation); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal nation")
		}
		if filter != nil && !filter[nation.Modded] {
			continue
		}
		nations = append(nations, &nation)
	}

	sort.Slice(nations, func(i, j int) bool {
		if nations[i].DominionID != nations[j].DominionID {
			return nations[i].DominionID < nations[j].DominionID
		}
		return nations[i].Era < nations[j].Era
	})

	return &ListNationsOutput{Nations: nations}, nil
}

func (r *redisRepository) ListUnits(ctx context.Context, input ListUnitsInput) (*ListUnitsOutput, error) {
	values, err := r.client.HVals(ctx, unitsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list units")
	}

	filter := moddedSet(input.Modded)
	units := make([]*dominions.Unit, 0, len(values))
	for _, value := range values {
		var unit dominions.Unit
		if err := json.Unmarshal([]byte(value), &unit); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal unit")
		}
		if filter != nil && !filter[unit.Modded] {
			continue
		}
		units = append(units, &unit)
	}

	sort.Slice(units, func(i, j int) bool {
		return units[i].DominionID < units[j].DominionID
	})

	return &ListUnitsOutput{Units: units}, nil
}

func (r *redisRepository) Import(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	if err := validateImport(input); err != nil {
		return nil, err
	}

	nations := make(map[string]interface{}, len(input.Nations))
	for _, n := range input.Nations {
		data, err := json.Marshal(n)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal nation %s", n.Display())
		}
		nations[nationField(n.Era, n.Name)] = data
	}

	units := make(map[string]interface{}, len(input.Units))
	for _, u := range input.Units {
		data, err := json.Marshal(u)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal unit %d", u.DominionID)
		}
		units[unitField(u.DominionID)] = data
	}

	importedAt := r.clock.Now().UTC()

	pipe := r.client.TxPipeline()
	if input.Replace {
		pipe.Del(ctx, nationsKey, unitsKey)
	}
	if len(nations) > 0 {
		pipe.HSet(ctx, nationsKey, nations)
	}
	if len(units) > 0 {
		pipe.HSet(ctx, unitsKey, units)
	}
	pipe.HSet(ctx, metaKey, metaImportedAt, importedAt.Format(time.RFC3339))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to import catalog")
	}

	return &ImportOutput{
		NationCount: len(input.Nations),
		UnitCount:   len(input.Units),
		ImportedAt:  importedAt,
	}, nil
}
