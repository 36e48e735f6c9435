package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo on the schema in internal/db.
// Replace issues many writes; run it inside a UnitOfWork so a failure leaves
// the previous snapshot in place.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

func NewSQLiteSnapshotRepo(db db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: db}
}

func (r *SQLiteSnapshotRepo) Replace(ctx context.Context, snap *domain.Snapshot) error {
	if err := clearTables(ctx, r.db,
		"stakeholders", "risks", "milestones", "products",
		"value_streams", "product_managers", "snapshot_meta",
	); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, source, imported_at) VALUES (1, ?, ?)`,
		snap.Source, formatTimestamp(snap.LoadedAt),
	); err != nil {
		return fmt.Errorf("inserting snapshot meta: %w", err)
	}

	for i, pm := range snap.Managers {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO product_managers (id, name, email, position) VALUES (?, ?, ?, ?)`,
			pm.ID, pm.Name, pm.Email, i,
		); err != nil {
			return fmt.Errorf("inserting product manager %q: %w", pm.ID, err)
		}
	}

	for i := range snap.ValueStreams {
		if err := r.insertValueStream(ctx, &snap.ValueStreams[i], i); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSnapshotRepo) insertValueStream(ctx context.Context, vs *domain.ValueStream, pos int) error {
	query := `INSERT INTO value_streams (id, name, description, product_manager_id, total_benefit, total_cloud_costs, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		vs.ID, vs.Name, vs.Description, vs.ProductManagerID, vs.TotalBenefit, vs.TotalCloudCosts, pos,
	); err != nil {
		return fmt.Errorf("inserting value stream %q: %w", vs.ID, err)
	}

	for i := range vs.Products {
		if err := r.insertProduct(ctx, vs.ID, &vs.Products[i], i); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSnapshotRepo) insertProduct(ctx context.Context, streamID string, p *domain.Product, pos int) error {
	query := `INSERT INTO products (id, value_stream_id, value_stream_ref, name, description, horizon, estimated_benefit, cloud_costs, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		p.ID, streamID, p.ValueStreamID, p.Name, p.Description, string(p.Horizon), p.EstimatedBenefit, p.CloudCosts, pos,
	); err != nil {
		return fmt.Errorf("inserting product %q: %w", p.ID, err)
	}

	for i, m := range p.Milestones {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO milestones (product_id, id, title, description, due_date, status, owner, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, m.ID, m.Title, m.Description, m.DueDate, string(m.Status), m.Owner, i,
		); err != nil {
			return fmt.Errorf("inserting milestone %q of %q: %w", m.ID, p.ID, err)
		}
	}
	for i, rk := range p.Risks {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO risks (product_id, id, title, description, severity, probability, mitigation, owner, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, rk.ID, rk.Title, rk.Description, string(rk.Severity), string(rk.Probability), rk.Mitigation, rk.Owner, i,
		); err != nil {
			return fmt.Errorf("inserting risk %q of %q: %w", rk.ID, p.ID, err)
		}
	}
	for i, s := range p.Stakeholders {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO stakeholders (product_id, id, name, role, email, raci_role, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, s.ID, s.Name, s.Role, s.Email, string(s.RACIRole), i,
		); err != nil {
			return fmt.Errorf("inserting stakeholder %q of %q: %w", s.ID, p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Meta(ctx context.Context) (*SnapshotMeta, error) {
	var source, importedAt string
	err := r.db.QueryRowContext(ctx, `SELECT source, imported_at FROM snapshot_meta WHERE id = 1`).Scan(&source, &importedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEmptyStore
		}
		return nil, fmt.Errorf("reading snapshot meta: %w", err)
	}
	return &SnapshotMeta{Source: source, ImportedAt: parseTimestamp(importedAt)}, nil
}

// Load reassembles the stored graph in its original order. LoadedAt carries
// the import time.
func (r *SQLiteSnapshotRepo) Load(ctx context.Context) (*domain.Snapshot, error) {
	meta, err := r.Meta(ctx)
	if err != nil {
		return nil, err
	}

	managers, err := r.loadManagers(ctx)
	if err != nil {
		return nil, err
	}
	streams, err := r.loadValueStreams(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Managers:     managers,
		ValueStreams: streams,
		Source:       meta.Source,
		LoadedAt:     meta.ImportedAt,
	}, nil
}

func (r *SQLiteSnapshotRepo) loadManagers(ctx context.Context) ([]domain.ProductManager, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email FROM product_managers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing product managers: %w", err)
	}
	defer rows.Close()

	managers := []domain.ProductManager{}
	for rows.Next() {
		var pm domain.ProductManager
		if err := rows.Scan(&pm.ID, &pm.Name, &pm.Email); err != nil {
			return nil, fmt.Errorf("scanning product manager: %w", err)
		}
		managers = append(managers, pm)
	}
	return managers, rows.Err()
}

func (r *SQLiteSnapshotRepo) loadValueStreams(ctx context.Context) ([]domain.ValueStream, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, product_manager_id, total_benefit, total_cloud_costs
		FROM value_streams ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing value streams: %w", err)
	}
	streams := []domain.ValueStream{}
	for rows.Next() {
		var vs domain.ValueStream
		if err := rows.Scan(&vs.ID, &vs.Name, &vs.Description, &vs.ProductManagerID, &vs.TotalBenefit, &vs.TotalCloudCosts); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning value stream: %w", err)
		}
		streams = append(streams, vs)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating value streams: %w", err)
	}
	rows.Close()

	products, err := r.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range streams {
		streams[i].Products = products[streams[i].ID]
		if streams[i].Products == nil {
			streams[i].Products = []domain.Product{}
		}
	}
	return streams, nil
}

// loadProducts returns products keyed by containing stream, each with its
// milestones, risks and stakeholders attached.
func (r *SQLiteSnapshotRepo) loadProducts(ctx context.Context) (map[string][]domain.Product, error) {
	milestones, err := r.loadMilestones(ctx)
	if err != nil {
		return nil, err
	}
	risks, err := r.loadRisks(ctx)
	if err != nil {
		return nil, err
	}
	stakeholders, err := r.loadStakeholders(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, value_stream_id, value_stream_ref, name, description, horizon, estimated_benefit, cloud_costs
		FROM products ORDER BY value_stream_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	byStream := make(map[string][]domain.Product)
	for rows.Next() {
		var (
			p        domain.Product
			streamID string
			horizon  string
		)
		if err := rows.Scan(&p.ID, &streamID, &p.ValueStreamID, &p.Name, &p.Description, &horizon, &p.EstimatedBenefit, &p.CloudCosts); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.Horizon = domain.Horizon(horizon)
		p.Milestones = milestones[p.ID]
		p.Risks = risks[p.ID]
		p.Stakeholders = stakeholders[p.ID]
		byStream[streamID] = append(byStream[streamID], p)
	}
	return byStream, rows.Err()
}

func (r *SQLiteSnapshotRepo) loadMilestones(ctx context.Context) (map[string][]domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, id, title, description, due_date, status, owner
		FROM milestones ORDER BY product_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Milestone)
	for rows.Next() {
		var (
			productID, status string
			m                 domain.Milestone
		)
		if err := rows.Scan(&productID, &m.ID, &m.Title, &m.Description, &m.DueDate, &status, &m.Owner); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		m.Status = domain.MilestoneStatus(status)
		out[productID] = append(out[productID], m)
	}
	return out, rows.Err()
}

func (r *SQLiteSnapshotRepo) loadRisks(ctx context.Context) (map[string][]domain.Risk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, id, title, description, severity, probability, mitigation, owner
		FROM risks ORDER BY product_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing risks: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Risk)
	for rows.Next() {
		var (
			productID, severity, probability string
			rk                               domain.Risk
		)
		if err := rows.Scan(&productID, &rk.ID, &rk.Title, &rk.Description, &severity, &probability, &rk.Mitigation, &rk.Owner); err != nil {
			return nil, fmt.Errorf("scanning risk: %w", err)
		}
		rk.Severity = domain.Severity(severity)
		rk.Probability = domain.Probability(probability)
		out[productID] = append(out[productID], rk)
	}
	return out, rows.Err()
}

func (r *SQLiteSnapshotRepo) loadStakeholders(ctx context.Context) (map[string][]domain.Stakeholder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, id, name, role, email, raci_role
		FROM stakeholders ORDER BY product_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing stakeholders: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Stakeholder)
	for rows.Next() {
		var (
			productID, raci string
			s               domain.Stakeholder
		)
		if err := rows.Scan(&productID, &s.ID, &s.Name, &s.Role, &s.Email, &raci); err != nil {
			return nil, fmt.Errorf("scanning stakeholder: %w", err)
		}
		s.RACIRole = domain.RACIRole(raci)
		out[productID] = append(out[productID], s)
	}
	return out, rows.Err()
}
