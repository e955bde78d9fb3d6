package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

const (
	supplierListKey     = "suppliers:list:all"
	supplierListPattern = "suppliers:list:*"
)

// SupplierCacheStore keeps supplier detail and list snapshots in redis.
type SupplierCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

func NewSupplierCacheStore(rdb *redis.Client) *SupplierCacheStore {
	return &SupplierCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   10 * time.Minute,
	}
}

var _ contract.ISupplierCache = (*SupplierCacheStore)(nil)

func supplierDetailKey(id string) string { return fmt.Sprintf("suppliers:id:%s", id) }

func (c *SupplierCacheStore) GetSupplier(ctx context.Context, id string) (*entity.Supplier, bool, error) {
	var s entity.Supplier
	ok, err := c.getJSON(ctx, supplierDetailKey(id), &s)
	if !ok || err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func (c *SupplierCacheStore) SetSupplier(ctx context.Context, supplier *entity.Supplier) error {
	return c.setJSON(ctx, supplierDetailKey(supplier.ID), supplier, c.detailTTL)
}

func (c *SupplierCacheStore) InvalidateSupplier(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, supplierDetailKey(id)).Err()
}

func (c *SupplierCacheStore) GetSupplierList(ctx context.Context) ([]entity.Supplier, bool, error) {
	var list []entity.Supplier
	ok, err := c.getJSON(ctx, supplierListKey, &list)
	if !ok || err != nil {
		return nil, false, err
	}
	return list, true, nil
}

func (c *SupplierCacheStore) SetSupplierList(ctx context.Context, suppliers []entity.Supplier) error {
	return c.setJSON(ctx, supplierListKey, suppliers, c.listTTL)
}

// InvalidateSupplierLists drops every list snapshot.
func (c *SupplierCacheStore) InvalidateSupplierLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, supplierListPattern, 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// getJSON treats a corrupt entry as a miss.
func (c *SupplierCacheStore) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *SupplierCacheStore) setJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}
