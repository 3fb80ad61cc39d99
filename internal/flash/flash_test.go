package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setterContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, recorder
}

// readerContext builds a context carrying the cookies a previous response
// set, the way a browser would replay them.
func readerContext(t *testing.T, from *httptest.ResponseRecorder) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	for _, cookie := range from.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			c.Request.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}
	return c
}

func TestFlashRoundTrip(t *testing.T) {
	setter, recorder := setterContext(t)
	Success(setter, "Details saved.")

	msg := Take(readerContext(t, recorder))
	require.NotNil(t, msg)
	assert.Equal(t, KindSuccess, msg.Kind)
	assert.Equal(t, "Details saved.", msg.Message)
}

func TestFlashErrorKind(t *testing.T) {
	setter, recorder := setterContext(t)
	Error(setter, "Invalid credentials")

	msg := Take(readerContext(t, recorder))
	require.NotNil(t, msg)
	assert.Equal(t, KindError, msg.Kind)
}

func TestFlashMessageWithColon(t *testing.T) {
	setter, recorder := setterContext(t)
	Success(setter, "Saved: all fields")

	msg := Take(readerContext(t, recorder))
	require.NotNil(t, msg)
	assert.Equal(t, "Saved: all fields", msg.Message)
}

func TestTakeWithoutPendingMessage(t *testing.T) {
	c, _ := setterContext(t)
	assert.Nil(t, Take(c))
}

func TestTakeClearsCookie(t *testing.T) {
	setter, setRecorder := setterContext(t)
	Success(setter, "once")

	readRecorder := httptest.NewRecorder()
	reader, _ := gin.CreateTestContext(readRecorder)
	reader.Request = httptest.NewRequest("GET", "/", nil)
	for _, cookie := range setRecorder.Result().Cookies() {
		reader.Request.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	require.NotNil(t, Take(reader))

	// The read response must expire the cookie
	cleared := false
	for _, cookie := range readRecorder.Result().Cookies() {
		if cookie.Name == cookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
