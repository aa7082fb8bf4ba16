package auth

import (
	"context"
	"sync"

	"github.com/iudanet/taskmanager/internal/client/storage"
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
//			InvalidateFunc: func(ctx context.Context) error {
//				panic("mock out the Invalidate method")
//			},
//			LoginFunc: func(ctx context.Context, email string, password string) (*storage.AuthData, error) {
//				panic("mock out the Login method")
//			},
//			LogoutFunc: func(ctx context.Context) error {
//				panic("mock out the Logout method")
//			},
//			ProfileFunc: func(ctx context.Context) (*api.UserResponse, error) {
//				panic("mock out the Profile method")
//			},
//			RegisterFunc: func(ctx context.Context, name string, email string, password string) (*storage.AuthData, error) {
//				panic("mock out the Register method")
//			},
//			SessionFunc: func(ctx context.Context) (*storage.AuthData, error) {
//				panic("mock out the Session method")
//			},
//			UpdateProfileFunc: func(ctx context.Context, upd ProfileUpdate) (*api.UserResponse, error) {
//				panic("mock out the UpdateProfile method")
//			},
//		}
//
//		// use mockedService in code that requires Service
//		// and then make assertions.
//
//	}
type ServiceMock struct {
	// InvalidateFunc mocks the Invalidate method.
	InvalidateFunc func(ctx context.Context) error

	// LoginFunc mocks the Login method.
	LoginFunc func(ctx context.Context, email string, password string) (*storage.AuthData, error)

	// LogoutFunc mocks the Logout method.
	LogoutFunc func(ctx context.Context) error

	// ProfileFunc mocks the Profile method.
	ProfileFunc func(ctx context.Context) (*api.UserResponse, error)

	// RegisterFunc mocks the Register method.
	RegisterFunc func(ctx context.Context, name string, email string, password string) (*storage.AuthData, error)

	// SessionFunc mocks the Session method.
	SessionFunc func(ctx context.Context) (*storage.AuthData, error)

	// UpdateProfileFunc mocks the UpdateProfile method.
	UpdateProfileFunc func(ctx context.Context, upd ProfileUpdate) (*api.UserResponse, error)

	// calls tracks calls to the methods.
	calls struct {
		// Invalidate holds details about calls to the Invalidate method.
		Invalidate []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
		}
		// Login holds details about calls to the Login method.
		Login []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Email is the email argument value.
			Email string
			// Password is the password argument value.
			Password string
		}
		// Logout holds details about calls to the Logout method.
		Logout []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
		}
		// Profile holds details about calls to the Profile method.
		Profile []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
		}
		// Register holds details about calls to the Register method.
		Register []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Name is the name argument value.
			Name string
			// Email is the email argument value.
			Email string
			// Password is the password argument value.
			Password string
		}
		// Session holds details about calls to the Session method.
		Session []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
		}
		// UpdateProfile holds details about calls to the UpdateProfile method.
		UpdateProfile []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Upd is the upd argument value.
			Upd ProfileUpdate
		}
	}
	lockInvalidate sync.RWMutex
	lockLogin sync.RWMutex
	lockLogout sync.RWMutex
	lockProfile sync.RWMutex
	lockRegister sync.RWMutex
	lockSession sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

// Invalidate calls InvalidateFunc.
func (mock *ServiceMock) Invalidate(ctx context.Context) error {
	if mock.InvalidateFunc == nil {
		panic("ServiceMock.InvalidateFunc: method is nil but Service.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx)
}

// InvalidateCalls gets all the calls that were made to Invalidate.
// Check the length with:
//
//	len(mockedService.InvalidateCalls())
func (mock *ServiceMock) InvalidateCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
	Ctx context.Context
}
	mock.lockInvalidate.RLock()
	calls = mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}

// Login calls LoginFunc.
func (mock *ServiceMock) Login(ctx context.Context, email string, password string) (*storage.AuthData, error) {
	if mock.LoginFunc == nil {
		panic("ServiceMock.LoginFunc: method is nil but Service.Login was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Email string
		Password string
	}{
		Ctx: ctx,
		Email: email,
		Password: password,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, email, password)
}

// LoginCalls gets all the calls that were made to Login.
// Check the length with:
//
//	len(mockedService.LoginCalls())
func (mock *ServiceMock) LoginCalls() []struct {
	Ctx context.Context
	Email string
	Password string
} {
	var calls []struct {
	Ctx context.Context
	Email string
	Password string
}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

// Logout calls LogoutFunc.
func (mock *ServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("ServiceMock.LogoutFunc: method is nil but Service.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

// LogoutCalls gets all the calls that were made to Logout.
// Check the length with:
//
//	len(mockedService.LogoutCalls())
func (mock *ServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
	Ctx context.Context
}
	mock.lockLogout.RLock()
	calls = mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

// Profile calls ProfileFunc.
func (mock *ServiceMock) Profile(ctx context.Context) (*api.UserResponse, error) {
	if mock.ProfileFunc == nil {
		panic("ServiceMock.ProfileFunc: method is nil but Service.Profile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx)
}

// ProfileCalls gets all the calls that were made to Profile.
// Check the length with:
//
//	len(mockedService.ProfileCalls())
func (mock *ServiceMock) ProfileCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
	Ctx context.Context
}
	mock.lockProfile.RLock()
	calls = mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}

// Register calls RegisterFunc.
func (mock *ServiceMock) Register(ctx context.Context, name string, email string, password string) (*storage.AuthData, error) {
	if mock.RegisterFunc == nil {
		panic("ServiceMock.RegisterFunc: method is nil but Service.Register was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Name string
		Email string
		Password string
	}{
		Ctx: ctx,
		Name: name,
		Email: email,
		Password: password,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, name, email, password)
}

// RegisterCalls gets all the calls that were made to Register.
// Check the length with:
//
//	len(mockedService.RegisterCalls())
func (mock *ServiceMock) RegisterCalls() []struct {
	Ctx context.Context
	Name string
	Email string
	Password string
} {
	var calls []struct {
	Ctx context.Context
	Name string
	Email string
	Password string
}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

// Session calls SessionFunc.
func (mock *ServiceMock) Session(ctx context.Context) (*storage.AuthData, error) {
	if mock.SessionFunc == nil {
		panic("ServiceMock.SessionFunc: method is nil but Service.Session was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSession.Lock()
	mock.calls.Session = append(mock.calls.Session, callInfo)
	mock.lockSession.Unlock()
	return mock.SessionFunc(ctx)
}

// SessionCalls gets all the calls that were made to Session.
// Check the length with:
//
//	len(mockedService.SessionCalls())
func (mock *ServiceMock) SessionCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
	Ctx context.Context
}
	mock.lockSession.RLock()
	calls = mock.calls.Session
	mock.lockSession.RUnlock()
	return calls
}

// UpdateProfile calls UpdateProfileFunc.
func (mock *ServiceMock) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*api.UserResponse, error) {
	if mock.UpdateProfileFunc == nil {
		panic("ServiceMock.UpdateProfileFunc: method is nil but Service.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Upd ProfileUpdate
	}{
		Ctx: ctx,
		Upd: upd,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, upd)
}

// UpdateProfileCalls gets all the calls that were made to UpdateProfile.
// Check the length with:
//
//	len(mockedService.UpdateProfileCalls())
func (mock *ServiceMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	Upd ProfileUpdate
} {
	var calls []struct {
	Ctx context.Context
	Upd ProfileUpdate
}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
