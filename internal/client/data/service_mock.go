package data

import (
	"context"
	"sync"

	"github.com/iudanet/taskmanager/pkg/api"
)

// Ensure, that ServiceMock does implement Service.
// If this is not the case, regenerate this file with moq.
var _ Service = &ServiceMock{}

// ServiceMock is a mock implementation of Service.
//
//	func TestSomethingThatUsesService(t *testing.T) {
//
//		// make and configure a mocked Service
//		mockedService := &ServiceMock{
//			AddFunc: func(ctx context.Context, title string, description string) (*api.TaskResponse, error) {
//				panic("mock out the Add method")
//			},
//			DeleteFunc: func(ctx context.Context, id string) error {
//				panic("mock out the Delete method")
//			},
//			EditFunc: func(ctx context.Context, id string, edit Edit) (*api.TaskResponse, error) {
//				panic("mock out the Edit method")
//			},
//			GetFunc: func(ctx context.Context, id string) (*api.TaskResponse, error) {
//				panic("mock out the Get method")
//			},
//			ListFunc: func(ctx context.Context) ([]api.TaskResponse, error) {
//				panic("mock out the List method")
//			},
//			SetCompletedFunc: func(ctx context.Context, id string, completed bool) (*api.TaskResponse, error) {
//				panic("mock out the SetCompleted method")
//			},
//		}
//
//		// use mockedService in code that requires Service
//		// and then make assertions.
//
//	}
type ServiceMock struct {
	// AddFunc mocks the Add method.
	AddFunc func(ctx context.Context, title string, description string) (*api.TaskResponse, error)

	// DeleteFunc mocks the Delete method.
	DeleteFunc func(ctx context.Context, id string) error

	// EditFunc mocks the Edit method.
	EditFunc func(ctx context.Context, id string, edit Edit) (*api.TaskResponse, error)

	// GetFunc mocks the Get method.
	GetFunc func(ctx context.Context, id string) (*api.TaskResponse, error)

	// ListFunc mocks the List method.
	ListFunc func(ctx context.Context) ([]api.TaskResponse, error)

	// SetCompletedFunc mocks the SetCompleted method.
	SetCompletedFunc func(ctx context.Context, id string, completed bool) (*api.TaskResponse, error)

	// calls tracks calls to the methods.
	calls struct {
		// Add holds details about calls to the Add method.
		Add []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Title is the title argument value.
			Title string
			// Description is the description argument value.
			Description string
		}
		// Delete holds details about calls to the Delete method.
		Delete []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// ID is the id argument value.
			ID string
		}
		// Edit holds details about calls to the Edit method.
		Edit []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// ID is the id argument value.
			ID string
			// Edit is the edit argument value.
			Edit Edit
		}
		// Get holds details about calls to the Get method.
		Get []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// ID is the id argument value.
			ID string
		}
		// List holds details about calls to the List method.
		List []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
		}
		// SetCompleted holds details about calls to the SetCompleted method.
		SetCompleted []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// ID is the id argument value.
			ID string
			// Completed is the completed argument value.
			Completed bool
		}
	}
	lockAdd sync.RWMutex
	lockDelete sync.RWMutex
	lockEdit sync.RWMutex
	lockGet sync.RWMutex
	lockList sync.RWMutex
	lockSetCompleted sync.RWMutex
}

// Add calls AddFunc.
func (mock *ServiceMock) Add(ctx context.Context, title string, description string) (*api.TaskResponse, error) {
	if mock.AddFunc == nil {
		panic("ServiceMock.AddFunc: method is nil but Service.Add was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Title string
		Description string
	}{
		Ctx: ctx,
		Title: title,
		Description: description,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, title, description)
}

// AddCalls gets all the calls that were made to Add.
// Check the length with:
//
//	len(mockedService.AddCalls())
func (mock *ServiceMock) AddCalls() []struct {
	Ctx context.Context
	Title string
	Description string
} {
	var calls []struct {
	Ctx context.Context
	Title string
	Description string
}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

// Delete calls DeleteFunc.
func (mock *ServiceMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("ServiceMock.DeleteFunc: method is nil but Service.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID string
	}{
		Ctx: ctx,
		ID: id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

// DeleteCalls gets all the calls that were made to Delete.
// Check the length with:
//
//	len(mockedService.DeleteCalls())
func (mock *ServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID string
} {
	var calls []struct {
	Ctx context.Context
	ID string
}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// Edit calls EditFunc.
func (mock *ServiceMock) Edit(ctx context.Context, id string, edit Edit) (*api.TaskResponse, error) {
	if mock.EditFunc == nil {
		panic("ServiceMock.EditFunc: method is nil but Service.Edit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID string
		Edit Edit
	}{
		Ctx: ctx,
		ID: id,
		Edit: edit,
	}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, id, edit)
}

// EditCalls gets all the calls that were made to Edit.
// Check the length with:
//
//	len(mockedService.EditCalls())
func (mock *ServiceMock) EditCalls() []struct {
	Ctx context.Context
	ID string
	Edit Edit
} {
	var calls []struct {
	Ctx context.Context
	ID string
	Edit Edit
}
	mock.lockEdit.RLock()
	calls = mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

// Get calls GetFunc.
func (mock *ServiceMock) Get(ctx context.Context, id string) (*api.TaskResponse, error) {
	if mock.GetFunc == nil {
		panic("ServiceMock.GetFunc: method is nil but Service.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID string
	}{
		Ctx: ctx,
		ID: id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

// GetCalls gets all the calls that were made to Get.
// Check the length with:
//
//	len(mockedService.GetCalls())
func (mock *ServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID string
} {
	var calls []struct {
	Ctx context.Context
	ID string
}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

// List calls ListFunc.
func (mock *ServiceMock) List(ctx context.Context) ([]api.TaskResponse, error) {
	if mock.ListFunc == nil {
		panic("ServiceMock.ListFunc: method is nil but Service.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

// ListCalls gets all the calls that were made to List.
// Check the length with:
//
//	len(mockedService.ListCalls())
func (mock *ServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
	Ctx context.Context
}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

// SetCompleted calls SetCompletedFunc.
func (mock *ServiceMock) SetCompleted(ctx context.Context, id string, completed bool) (*api.TaskResponse, error) {
	if mock.SetCompletedFunc == nil {
		panic("ServiceMock.SetCompletedFunc: method is nil but Service.SetCompleted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID string
		Completed bool
	}{
		Ctx: ctx,
		ID: id,
		Completed: completed,
	}
	mock.lockSetCompleted.Lock()
	mock.calls.SetCompleted = append(mock.calls.SetCompleted, callInfo)
	mock.lockSetCompleted.Unlock()
	return mock.SetCompletedFunc(ctx, id, completed)
}

// SetCompletedCalls gets all the calls that were made to SetCompleted.
// Check the length with:
//
//	len(mockedService.SetCompletedCalls())
func (mock *ServiceMock) SetCompletedCalls() []struct {
	Ctx context.Context
	ID string
	Completed bool
} {
	var calls []struct {
	Ctx context.Context
	ID string
	Completed bool
}
	mock.lockSetCompleted.RLock()
	calls = mock.calls.SetCompleted
	mock.lockSetCompleted.RUnlock()
	return calls
}
