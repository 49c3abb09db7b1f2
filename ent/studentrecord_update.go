// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avinashj/socratic/ent/predicate"
	"github.com/avinashj/socratic/ent/studentrecord"
)

// StudentRecordUpdate is the builder for updating StudentRecord entities.
type StudentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StudentRecordMutation
}

// Where appends a list predicates to the StudentRecordUpdate builder.
func (_u *StudentRecordUpdate) Where(ps ...predicate.StudentRecord) *StudentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *StudentRecordUpdate) SetStudentID(v string) *StudentRecordUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentRecordUpdate) SetNillableStudentID(v *string) *StudentRecordUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *StudentRecordUpdate) SetDocument(v string) *StudentRecordUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetNillableDocument sets the "document" field if the given value is not nil.
func (_u *StudentRecordUpdate) SetNillableDocument(v *string) *StudentRecordUpdate {
	if v != nil {
		_u.SetDocument(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentRecordUpdate) SetUpdatedAt(v time.Time) *StudentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentRecordMutation object of the builder.
func (_u *StudentRecordUpdate) Mutation() *StudentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentRecordUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := studentrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentRecord.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentrecord.Table, studentrecord.Columns, sqlgraph.NewFieldSpec(studentrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(studentrecord.FieldDocument, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentRecordUpdateOne is the builder for updating a single StudentRecord entity.
type StudentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentRecordMutation
}

// SetStudentID sets the "student_id" field.
func (_u *StudentRecordUpdateOne) SetStudentID(v string) *StudentRecordUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentRecordUpdateOne) SetNillableStudentID(v *string) *StudentRecordUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *StudentRecordUpdateOne) SetDocument(v string) *StudentRecordUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetNillableDocument sets the "document" field if the given value is not nil.
func (_u *StudentRecordUpdateOne) SetNillableDocument(v *string) *StudentRecordUpdateOne {
	if v != nil {
		_u.SetDocument(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentRecordUpdateOne) SetUpdatedAt(v time.Time) *StudentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentRecordMutation object of the builder.
func (_u *StudentRecordUpdateOne) Mutation() *StudentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentRecordUpdate builder.
func (_u *StudentRecordUpdateOne) Where(ps ...predicate.StudentRecord) *StudentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentRecordUpdateOne) Select(field string, fields ...string) *StudentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentRecord entity.
func (_u *StudentRecordUpdateOne) Save(ctx context.Context) (*StudentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentRecordUpdateOne) SaveX(ctx context.Context) *StudentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := studentrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentRecord.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentRecordUpdateOne) sqlSave(ctx context.Context) (_node *StudentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentrecord.Table, studentrecord.Columns, sqlgraph.NewFieldSpec(studentrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentrecord.FieldID)
		for _, f := range fields {
			if !studentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(studentrecord.FieldDocument, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
