package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

var _ port.CatalogRepository = (*ProductsRepository)(nil)

// ProductsRepository reads and upserts the catalog. Product ids are
// NUMERIC in the schema; they cross this boundary as decimal strings
// and widen to big.Int only for validation here.
type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

const productColumns = `
	id::text, sku, title,
	COALESCE(description, ''), COALESCE(manufacturer, ''),
	COALESCE(category, ''), COALESCE(uom, ''),
	qty_available, COALESCE(tags, '')`

func (r ProductsRepository) ListProducts(
	ctx context.Context, q domain.CatalogQuery,
) ([]domain.Product, int, error) {
	const op = "ProductsRepository.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	where, args := listPredicates(q, 1)

	var total int
	countQuery := "SELECT count(*) FROM products " + where
	err := r.sqldb.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to count: %w", op, err)
	}

	limIdx := len(args) + 1
	listQuery := fmt.Sprintf(
		"SELECT %s FROM products %s ORDER BY title ASC LIMIT $%d OFFSET $%d",
		productColumns, where, limIdx, limIdx+1,
	)
	listArgs := append(args, q.PageSize, (q.Page-1)*q.PageSize)

	rows, err := r.sqldb.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	ps, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachImages(ctx, ps); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return ps, total, nil
}

func (r ProductsRepository) ProductBySKU(
	ctx context.Context, sku string,
) (domain.Product, error) {
	const op = "ProductsRepository.ProductBySKU"

	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE sku = $1 LIMIT 1", productColumns,
	)

	p, err := scanProduct(r.sqldb.QueryRowContext(ctx, query, sku))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf(
				"%s: sku %q: %w", op, sku, domain.ErrNotFound,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	ps := []domain.Product{p}
	if err := r.attachImages(ctx, ps); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return ps[0], nil
}

// ProductsByIDs returns the products matching the id list, or the
// whole catalog projection when the list is empty.
func (r ProductsRepository) ProductsByIDs(
	ctx context.Context, ids []string,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ProductsByIDs"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf("SELECT %s FROM products", productColumns)
	var args []any

	if len(ids) != 0 {
		widened, err := widenIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		query += fmt.Sprintf(
			" WHERE id IN (%s)", placeholdersNumeric(len(widened)),
		)
		args = widened
	}

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	ps, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) FacetOptions(
	ctx context.Context,
) (domain.FacetOptions, error) {
	const op = "ProductsRepository.FacetOptions"

	query := "SELECT COALESCE(category, ''), COALESCE(manufacturer, '')," +
		" COALESCE(tags, '') FROM products"

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return domain.FacetOptions{}, fmt.Errorf(
			"%s: failed to query: %w", op, err,
		)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.Category, &p.Manufacturer, &p.Tags)
		if err != nil {
			return domain.FacetOptions{}, fmt.Errorf(
				"%s: failed to scan: %w", op, err,
			)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return domain.FacetOptions{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.CollectFacetOptions(ps), nil
}

func (r ProductsRepository) UpsertProducts(
	ctx context.Context, ps []domain.Product,
) (storeErr error) {
	const op = "ProductsRepository.UpsertProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := widenIDs(productIDs(ps)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}
		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	upsert := `
		INSERT INTO products (
			id, sku, title, description, manufacturer,
			category, uom, qty_available, tags
		)
		VALUES ($1::numeric, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			sku = EXCLUDED.sku,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			manufacturer = EXCLUDED.manufacturer,
			category = EXCLUDED.category,
			uom = EXCLUDED.uom,
			qty_available = EXCLUDED.qty_available,
			tags = EXCLUDED.tags;
	`

	stmt, err := tx.PrepareContext(ctx, upsert)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, p := range ps {
		_, err := stmt.ExecContext(ctx,
			p.ID, p.SKU, p.Title, p.Description, p.Manufacturer,
			p.Category, p.UOM, nullableInt(p.QtyAvailable), p.Tags,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}

		if err := r.replaceImages(ctx, tx, p); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (r ProductsRepository) replaceImages(
	ctx context.Context, tx *sql.Tx, p domain.Product,
) error {
	_, err := tx.ExecContext(ctx,
		"DELETE FROM product_images WHERE product_id = $1::numeric", p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete images: %w", err)
	}

	for i, img := range p.Images {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_images (product_id, src, position)
			 VALUES ($1::numeric, $2, $3)`,
			p.ID, img.Src, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert image: %w", err)
		}
	}
	return nil
}

func (r ProductsRepository) attachImages(
	ctx context.Context, ps []domain.Product,
) error {
	if len(ps) == 0 {
		return nil
	}

	args := make([]any, len(ps))
	for i, p := range ps {
		args[i] = p.ID
	}

	query := fmt.Sprintf(
		`SELECT product_id::text, src FROM product_images
		 WHERE product_id IN (%s) ORDER BY position ASC`,
		placeholdersNumeric(len(ps)),
	)

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	bySrc := make(map[string][]domain.ProductImage, len(ps))
	for rows.Next() {
		var productID, src string
		if err := rows.Scan(&productID, &src); err != nil {
			return fmt.Errorf("failed to scan image: %w", err)
		}
		bySrc[productID] = append(bySrc[productID], domain.ProductImage{Src: src})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range ps {
		ps[i].Images = bySrc[ps[i].ID]
	}
	return nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var qty sql.NullInt64
	err := row.Scan(
		&p.ID, &p.SKU, &p.Title, &p.Description, &p.Manufacturer,
		&p.Category, &p.UOM, &qty, &p.Tags,
	)
	if err != nil {
		return domain.Product{}, err
	}
	if qty.Valid {
		n := int(qty.Int64)
		p.QtyAvailable = &n
	}
	return p, nil
}

// widenIDs parses decimal-string ids into arbitrary-precision
// integers, rejecting anything that is not a plain decimal number.
// The widened values go to the driver as strings for the NUMERIC
// column; big.Int only guards against malformed input.
func widenIDs(ids []string) ([]any, error) {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		n, ok := new(big.Int).SetString(id, 10)
		if !ok {
			return nil, fmt.Errorf(
				"id %q is not a decimal integer: %w", id, domain.ErrValidation,
			)
		}
		out = append(out, n.String())
	}
	return out, nil
}

func productIDs(ps []domain.Product) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func placeholdersNumeric(n int) string {
	return placeholdersCast(n, 1, "::numeric")
}
