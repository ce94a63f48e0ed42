package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

var _ repository.ZapatoRepository = (*ZapatoRepo)(nil)

const zapatoCols = "cid, codigo, tipo, marca, modelo, material, color, talla, bodega, tienda1, tienda2, precio, imagen"

// ZapatoRepo implementación del puerto ZapatoRepository sobre PostgreSQL.
type ZapatoRepo struct {
	pool *pgxpool.Pool
}

// NewZapatoRepository construye el adaptador de persistencia del inventario.
func NewZapatoRepository(pool *pgxpool.Pool) *ZapatoRepo {
	return &ZapatoRepo{pool: pool}
}

// CreateBatch inserta el lote como un único INSERT multi-fila: la sentencia es
// atómica, así que o entran todas las filas o ninguna. Asigna los CID devueltos.
func (r *ZapatoRepo) CreateBatch(ctx context.Context, zapatos []*entity.Zapato) error {
	if len(zapatos) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO bodega (codigo, tipo, marca, modelo, material, color, talla, bodega, tienda1, tienda2, precio, imagen)
		VALUES `)
	args := make([]interface{}, 0, len(zapatos)*12)
	for i, z := range zapatos {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 12
		sb.WriteString("(")
		for j := 1; j <= 12; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+j)
		}
		sb.WriteString(")")
		args = append(args,
			z.Codigo, z.Tipo, z.Marca, z.Modelo, z.Material, z.Color, z.Talla,
			z.Bodega, z.Tienda1, z.Tienda2, z.Precio, z.Imagen,
		)
	}
	sb.WriteString(" RETURNING cid")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("insert lote bodega: %w", err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if err := rows.Scan(&zapatos[i].CID); err != nil {
			return fmt.Errorf("scan cid: %w", err)
		}
		i++
	}
	return rows.Err()
}

// GroupByTipo agrupa por (marca, modelo, material, color, imagen) y agrega las
// tallas con json_agg. Los contadores de tienda van a NULL cuando no hay
// existencias para que el cliente los trate como ausentes.
func (r *ZapatoRepo) GroupByTipo(ctx context.Context, tipo string) ([]entity.ZapatoGrupo, error) {
	query := `
		SELECT
			marca,
			modelo,
			material,
			color,
			imagen,
			json_agg(
				json_build_object(
					'talla', talla,
					'bodega', bodega,
					'tienda1', CASE WHEN tienda1 >= 1 THEN tienda1 ELSE NULL END,
					'tienda2', CASE WHEN tienda2 >= 1 THEN tienda2 ELSE NULL END
				)
			) AS tallas_disponibles
		FROM bodega
		WHERE tipo = $1
		GROUP BY marca, modelo, material, color, imagen
		ORDER BY marca, modelo, material, color, imagen`

	rows, err := r.pool.Query(ctx, query, tipo)
	if err != nil {
		return nil, fmt.Errorf("agrupar por tipo: %w", err)
	}
	defer rows.Close()

	grupos := make([]entity.ZapatoGrupo, 0)
	for rows.Next() {
		var g entity.ZapatoGrupo
		var tallas []byte
		if err := rows.Scan(&g.Marca, &g.Modelo, &g.Material, &g.Color, &g.Imagen, &tallas); err != nil {
			return nil, fmt.Errorf("scan grupo: %w", err)
		}
		if err := json.Unmarshal(tallas, &g.TallasDisponibles); err != nil {
			return nil, fmt.Errorf("decodificar tallas_disponibles: %w", err)
		}
		grupos = append(grupos, g)
	}
	return grupos, rows.Err()
}

// Search filtra con coincidencia parcial case-insensitive sobre los campos presentes.
func (r *ZapatoRepo) Search(ctx context.Context, filtro repository.ZapatoFiltro) ([]*entity.Zapato, error) {
	conds := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, len(args)))
	}
	add("marca", filtro.Marca)
	add("modelo", filtro.Modelo)
	add("material", filtro.Material)
	add("color", filtro.Color)
	add("talla", filtro.Talla)

	query := fmt.Sprintf(`SELECT %s FROM bodega WHERE %s ORDER BY cid`,
		zapatoCols, strings.Join(conds, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar zapatos: %w", err)
	}
	defer rows.Close()

	var zapatos []*entity.Zapato
	for rows.Next() {
		z, err := scanZapato(rows)
		if err != nil {
			return nil, err
		}
		zapatos = append(zapatos, z)
	}
	return zapatos, rows.Err()
}

// FindByCID devuelve el zapato o nil si no existe.
func (r *ZapatoRepo) FindByCID(ctx context.Context, cid int64) (*entity.Zapato, error) {
	query := fmt.Sprintf(`SELECT %s FROM bodega WHERE cid = $1`, zapatoCols)
	row := r.pool.QueryRow(ctx, query, cid)
	z, err := scanZapato(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar por cid: %w", err)
	}
	return z, nil
}

// UpdateByCID arma el SET solo con los campos presentes del patch.
// Las columnas salen de una lista fija; la entrada del cliente nunca
// se concatena al SQL.
func (r *ZapatoRepo) UpdateByCID(ctx context.Context, cid int64, patch repository.ZapatoPatch) (*entity.Zapato, error) {
	sets := make([]string, 0, 12)
	args := make([]interface{}, 0, 13)
	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Codigo != nil {
		add("codigo", *patch.Codigo)
	}
	if patch.Tipo != nil {
		add("tipo", *patch.Tipo)
	}
	if patch.Marca != nil {
		add("marca", *patch.Marca)
	}
	if patch.Modelo != nil {
		add("modelo", *patch.Modelo)
	}
	if patch.Material != nil {
		add("material", *patch.Material)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if patch.Talla != nil {
		add("talla", *patch.Talla)
	}
	if patch.Bodega != nil {
		add("bodega", *patch.Bodega)
	}
	if patch.Tienda1 != nil {
		add("tienda1", *patch.Tienda1)
	}
	if patch.Tienda2 != nil {
		add("tienda2", *patch.Tienda2)
	}
	if patch.Precio != nil {
		add("precio", *patch.Precio)
	}
	if patch.Imagen != nil {
		add("imagen", *patch.Imagen)
	}
	if len(sets) == 0 {
		return r.FindByCID(ctx, cid)
	}

	args = append(args, cid)
	query := fmt.Sprintf(`UPDATE bodega SET %s WHERE cid = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), zapatoCols)

	row := r.pool.QueryRow(ctx, query, args...)
	z, err := scanZapato(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("actualizar por cid: %w", err)
	}
	return z, nil
}

func scanZapato(row pgx.Row) (*entity.Zapato, error) {
	var z entity.Zapato
	err := row.Scan(
		&z.CID, &z.Codigo, &z.Tipo, &z.Marca, &z.Modelo, &z.Material, &z.Color,
		&z.Talla, &z.Bodega, &z.Tienda1, &z.Tienda2, &z.Precio, &z.Imagen,
	)
	if err != nil {
		return nil, err
	}
	return &z, nil
}
