package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/mock"
	"github.com/MKhiriev/pinvent/internal/service"
	"github.com/MKhiriev/pinvent/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID  = "0194f1c2-7a10-7000-8000-000000000001"
	testToken   = "signed.jwt.token"
	testVersion = "test-version"
)

var testUser = models.User{
	ID:       testUserID,
	Username: "Jane",
	Email:    "jane@example.com",
	Photo:    models.DefaultUserPhoto,
}

type serviceMocks struct {
	auth     *mock.MockAuthService
	users    *mock.MockUserService
	products *mock.MockProductService
	contact  *mock.MockContactService
}

func testSettings() Settings {
	return Settings{
		SessionDuration: 24 * time.Hour,
		RequestTimeout:  5 * time.Second,
		CORSOrigins:     []string{"http://localhost:5173"},
		MaxUploadSize:   2_000_000,
	}
}

func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	return newTestHandlerWithSettings(t, testSettings())
}

func newTestHandlerWithSettings(t *testing.T, settings Settings) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		products: mock.NewMockProductService(ctrl),
		contact:  mock.NewMockContactService(ctrl),
	}
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(testVersion).AnyTimes()

	services := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		ProductService: m.products,
		ContactService: m.contact,
		AppInfoService: appInfo,
	}

	return NewHandler(services, metrics.New(), settings, logger.Nop()), m
}

// expectSession makes the access guard accept testToken as testUser.
func (m serviceMocks) expectSession() {
	m.auth.EXPECT().AuthenticateUser(gomock.Any(), testToken).Return(testUser, nil)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func withSession(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	return r
}

func serve(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// multipartBody builds a form with the given text parts and, when image is
// not nil, an "image" file part.
func multipartBody(t *testing.T, values map[string]string, image *models.ImageFile) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+image.Name+`"`)
		header.Set("Content-Type", image.ContentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image.Data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}
