package service

import (
	"context"

	"employee-directory/internal/model"
)

// FakeDirectory 供 handler 測試使用；未設定的方法會 panic
type FakeDirectory struct {
	SearchFn func(ctx context.Context, query string) ([]model.Employee, error)
	GetFn    func(ctx context.Context, id int) (*model.Employee, error)
	CreateFn func(ctx context.Context, input CreateEmployeeInput) (*model.Employee, error)
	UpdateFn func(ctx context.Context, id int, input UpdateEmployeeInput) (*model.Employee, error)
	DeleteFn func(ctx context.Context, id int) error
}

func (f *FakeDirectory) Search(ctx context.Context, query string) ([]model.Employee, error) {
	if f.SearchFn != nil {
		return f.SearchFn(ctx, query)
	}
	panic("unexpected Search")
}

func (f *FakeDirectory) Get(ctx context.Context, id int) (*model.Employee, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	panic("unexpected Get")
}

func (f *FakeDirectory) Create(ctx context.Context, input CreateEmployeeInput) (*model.Employee, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, input)
	}
	panic("unexpected Create")
}

func (f *FakeDirectory) Update(ctx context.Context, id int, input UpdateEmployeeInput) (*model.Employee, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, input)
	}
	panic("unexpected Update")
}

func (f *FakeDirectory) Delete(ctx context.Context, id int) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	panic("unexpected Delete")
}

var (
	_ Directory = (*FakeDirectory)(nil)
	_ Directory = (*EmployeeService)(nil)
)
