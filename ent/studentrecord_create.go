// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avinashj/socratic/ent/studentrecord"
)

// StudentRecordCreate is the builder for creating a StudentRecord entity.
type StudentRecordCreate struct {
	config
	mutation *StudentRecordMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *StudentRecordCreate) SetStudentID(v string) *StudentRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetDocument sets the "document" field.
func (_c *StudentRecordCreate) SetDocument(v string) *StudentRecordCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentRecordCreate) SetUpdatedAt(v time.Time) *StudentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentRecordCreate) SetNillableUpdatedAt(v *time.Time) *StudentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StudentRecordMutation object of the builder.
func (_c *StudentRecordCreate) Mutation() *StudentRecordMutation {
	return _c.mutation
}

// Save creates the StudentRecord in the database.
func (_c *StudentRecordCreate) Save(ctx context.Context) (*StudentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentRecordCreate) SaveX(ctx context.Context) *StudentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentRecordCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentRecordCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudentRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := studentrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Document(); !ok {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required field "StudentRecord.document"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudentRecord.updated_at"`)}
	}
	return nil
}

func (_c *StudentRecordCreate) sqlSave(ctx context.Context) (*StudentRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentRecordCreate) createSpec() (*StudentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentrecord.Table, sqlgraph.NewFieldSpec(studentrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studentrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(studentrecord.FieldDocument, field.TypeString, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StudentRecordCreateBulk is the builder for creating many StudentRecord entities in bulk.
type StudentRecordCreateBulk struct {
	config
	err      error
	builders []*StudentRecordCreate
}

// Save creates the StudentRecord entities in the database.
func (_c *StudentRecordCreateBulk) Save(ctx context.Context) ([]*StudentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudentRecordCreateBulk) SaveX(ctx context.Context) []*StudentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
