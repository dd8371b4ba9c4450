// Package memory implementa los puertos de persistencia sobre go-memdb.
// Replica las restricciones UNIQUE y las reglas de cascada del esquema
// PostgreSQL; se usa en tests y con STORE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-memdb"

	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

const (
	tableCompanies = "companies"
	tableAddresses = "addresses"
	tableEmployees = "employees"
	tableProjects  = "projects"
	tableTeams     = "teams"
	tableTasks     = "tasks"
	tableComments  = "comments"
)

func idIndex(field string) *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:    "id",
		Unique:  true,
		Indexer: &memdb.StringFieldIndex{Field: field},
	}
}

// fieldIndex índice no único; go-memdb no rechaza duplicados en índices
// Unique, así que la unicidad se valida en cada repo con unique().
func fieldIndex(name, field string) *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:         name,
		AllowMissing: true,
		Indexer:      &memdb.StringFieldIndex{Field: field},
	}
}

func table(name string, indexes ...*memdb.IndexSchema) *memdb.TableSchema {
	t := &memdb.TableSchema{Name: name, Indexes: map[string]*memdb.IndexSchema{}}
	for _, idx := range indexes {
		t.Indexes[idx.Name] = idx
	}
	return t
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{Tables: map[string]*memdb.TableSchema{
		tableCompanies: table(tableCompanies, idIndex("ID"),
			fieldIndex("name", "Name"), fieldIndex("cnpj", "CNPJ")),
		tableAddresses: table(tableAddresses, idIndex("CompanyID")),
		tableEmployees: table(tableEmployees, idIndex("ID"),
			fieldIndex("company_id", "CompanyID"), fieldIndex("username", "Username"),
			fieldIndex("cpf", "CPF"), fieldIndex("email", "Email"), fieldIndex("team_id", "TeamID")),
		tableProjects: table(tableProjects, idIndex("ID"),
			fieldIndex("company_id", "CompanyID"), fieldIndex("name", "Name"),
			fieldIndex("manager_id", "ManagerID")),
		tableTeams: table(tableTeams, idIndex("ID"),
			fieldIndex("company_id", "CompanyID"), fieldIndex("name", "Name"),
			fieldIndex("project_id", "ProjectID")),
		tableTasks: table(tableTasks, idIndex("ID"),
			fieldIndex("project_id", "ProjectID"), fieldIndex("title", "Title")),
		tableComments: table(tableComments, idIndex("ID"),
			fieldIndex("task_id", "TaskID"), fieldIndex("owner_id", "OwnerID")),
	}}
}

// Store envuelve la base go-memdb. go-memdb admite un único escritor a la
// vez, así que las transacciones quedan serializadas.
type Store struct {
	db *memdb.MemDB
}

// NewStore construye un store vacío.
func NewStore() *Store {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		panic(fmt.Sprintf("memory: esquema inválido: %v", err))
	}
	return &Store{db: db}
}

// Run ejecuta fn en una transacción de escritura; se confirma sólo si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Set) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	t := &tx{txn: txn}
	if err := fn(t.repos()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Ping siempre responde: no hay conexión que verificar.
func (s *Store) Ping(context.Context) error { return nil }

type tx struct {
	txn *memdb.Txn
}

func (t *tx) repos() repository.Set {
	return repository.Set{
		Companies: &CompanyRepo{tx: t},
		Addresses: &AddressRepo{tx: t},
		Employees: &EmployeeRepo{tx: t},
		Projects:  &ProjectRepo{tx: t},
		Teams:     &TeamRepo{tx: t},
		Tasks:     &TaskRepo{tx: t},
		Comments:  &CommentRepo{tx: t},
	}
}

// Los objetos guardados en go-memdb no se mutan: se inserta y se devuelve una copia.

func first[T any](t *tx, tbl, index, value string) (*T, error) {
	raw, err := t.txn.First(tbl, index, value)
	if err != nil {
		return nil, fmt.Errorf("memory %s.%s: %w", tbl, index, err)
	}
	if raw == nil {
		return nil, nil
	}
	cp := *raw.(*T)
	return &cp, nil
}

// all devuelve copias ordenadas por id (orden natural del índice).
func all[T any](t *tx, tbl, index, value string) ([]*T, error) {
	it, err := t.txn.Get(tbl, index, value)
	if err != nil {
		return nil, fmt.Errorf("memory %s.%s: %w", tbl, index, err)
	}
	var out []*T
	for raw := it.Next(); raw != nil; raw = it.Next() {
		cp := *raw.(*T)
		out = append(out, &cp)
	}
	return out, nil
}

func put[T any](t *tx, tbl string, v *T) error {
	cp := *v
	if err := t.txn.Insert(tbl, &cp); err != nil {
		return fmt.Errorf("memory insert %s: %w", tbl, err)
	}
	return nil
}

func remove(t *tx, tbl, index, value string) error {
	if _, err := t.txn.DeleteAll(tbl, index, value); err != nil {
		return fmt.Errorf("memory delete %s: %w", tbl, err)
	}
	return nil
}

func exists(t *tx, tbl, id string) (bool, error) {
	raw, err := t.txn.First(tbl, "id", id)
	if err != nil {
		return false, fmt.Errorf("memory %s.id: %w", tbl, err)
	}
	return raw != nil, nil
}

func ids[T any](t *tx, tbl, index, value string, id func(*T) string) ([]string, error) {
	rows, err := all[T](t, tbl, index, value)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out, nil
}

// unique emula un índice UNIQUE: otro registro (id distinto) con el mismo valor.
func unique[T any](t *tx, tbl, index, value, selfID string, id func(*T) string) error {
	if value == "" {
		return nil
	}
	found, err := ids(t, tbl, index, value, id)
	if err != nil {
		return err
	}
	for _, other := range found {
		if other != selfID {
			return errUnique
		}
	}
	return nil
}

func sortBy[T any](list []*T, key func(*T) string) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(key(list[i])) < strings.ToLower(key(list[j]))
	})
}

// errForeignKey emula la violación de FK que devolvería PostgreSQL (23503).
func errForeignKey(tbl, constraint string) error {
	return fmt.Errorf("delete %s: violates foreign key constraint %q", tbl, constraint)
}

var errUnique = domain.ErrNameAlreadyUsed

func companyKey(c *entity.Company) string   { return c.ID }
func employeeKey(e *entity.Employee) string { return e.ID }
func projectKey(p *entity.Project) string   { return p.ID }
func teamKey(t *entity.Team) string         { return t.ID }
func taskKey(t *entity.Task) string         { return t.ID }
