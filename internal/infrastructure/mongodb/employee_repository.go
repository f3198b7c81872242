package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// employeeDoc documento BSON de la colección employees.
type employeeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Department  string             `bson:"department"`
	Designation string             `bson:"designation"`
	Salary      int                `bson:"salary"`
	CreatedBy   string             `bson:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	coll *mongo.Collection
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{coll: db.Collection(employeesCollection)}
}

// Create persiste un empleado nuevo y asigna el ObjectID generado por el store.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	doc := employeeDoc{
		Name:        emp.Name,
		Email:       emp.Email,
		Department:  emp.Department,
		Designation: emp.Designation,
		Salary:      emp.Salary,
		CreatedBy:   emp.CreatedBy,
		CreatedAt:   emp.CreatedAt,
	}
	res, err := r.coll.InsertOne(context.Background(), doc)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		emp.ID = oid.Hex()
	}
	return nil
}

// FindByEmailAndOwner busca por (email, createdBy); nil, nil si no existe.
func (r *EmployeeRepo) FindByEmailAndOwner(email, ownerID string) (*entity.Employee, error) {
	var doc employeeDoc
	filter := bson.M{"email": email, "createdBy": ownerID}
	err := r.coll.FindOne(context.Background(), filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by email and owner: %w", err)
	}
	return doc.toEntity(), nil
}

// ListByOwner devuelve todos los empleados con createdBy == ownerID, en el
// orden natural del store.
func (r *EmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	ctx := context.Background()
	cur, err := r.coll.Find(ctx, bson.M{"createdBy": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var list []*entity.Employee
	for cur.Next(ctx) {
		var doc employeeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cur.Err()
}

// UpdateOwned reemplaza todos los campos del documento (emp.ID, emp.CreatedBy).
// Un ID con hex malformado no puede coincidir con ningún documento: matched = false.
func (r *EmployeeRepo) UpdateOwned(emp *entity.Employee) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(emp.ID)
	if err != nil {
		return false, nil
	}
	filter := bson.M{"_id": oid, "createdBy": emp.CreatedBy}
	update := bson.M{"$set": bson.M{
		"name":        emp.Name,
		"email":       emp.Email,
		"department":  emp.Department,
		"designation": emp.Designation,
		"salary":      emp.Salary,
	}}
	res, err := r.coll.UpdateOne(context.Background(), filter, update)
	if err != nil {
		if isDuplicateKey(err) {
			return true, domain.ErrEmailAlreadyExists
		}
		return false, fmt.Errorf("update employee: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeleteOwned elimina el documento (id, ownerID); deleted = false si nada coincidió.
func (r *EmployeeRepo) DeleteOwned(id, ownerID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(context.Background(), bson.M{"_id": oid, "createdBy": ownerID})
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (d *employeeDoc) toEntity() *entity.Employee {
	return &entity.Employee{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		Department:  d.Department,
		Designation: d.Designation,
		Salary:      d.Salary,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
	}
}
