package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/require"

	"addressbook/internal/handler"
	"addressbook/internal/model/dto"
	"addressbook/internal/repository"
	"addressbook/internal/service"
	"addressbook/pkg/response"
	"addressbook/pkg/snowflake"
)

func TestMain(m *testing.M) {
	if err := snowflake.Init(2, 1); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()

	book, err := repository.NewAddressBook()
	require.NoError(t, err)
	svc := service.NewAddressBookService(book)

	ctx := context.Background()
	for _, req := range []dto.AddPersonRequest{
		{Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com", Address: "123 Jurong West Ave 6", Tags: []string{"friends"}},
		{Name: "Benson Meier", Phone: "98765432", Email: "johnd@example.com", Address: "311 Clementi Ave 2", Remark: "owes money"},
	} {
		_, err := svc.AddPerson(ctx, req)
		require.NoError(t, err)
	}

	h := server.New()
	persons := handler.NewPersonHandler(svc)
	h.GET("/v1/persons", persons.ListPersons)
	h.POST("/v1/persons", persons.AddPerson)
	h.POST("/v1/persons/:index/privacy", persons.TogglePrivacy)
	return h
}

func jsonBody(s string) *ut.Body {
	return &ut.Body{Body: bytes.NewBufferString(s), Len: len(s)}
}

var jsonHeader = ut.Header{Key: "Content-Type", Value: "application/json"}

type listResponse struct {
	Data []dto.PersonItem      `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

func listPersons(t *testing.T, h *server.Hertz, url string) []dto.PersonItem {
	t.Helper()

	w := ut.PerformRequest(h.Engine, http.MethodGet, url, nil)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var out listResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &out))
	return out.Data
}

func decodeError(t *testing.T, body []byte) response.ErrorDetail {
	t.Helper()

	var out response.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Error
}

func TestListPersons(t *testing.T) {
	h := newTestServer(t)

	all := listPersons(t, h, "/v1/persons")
	require.Len(t, all, 2)
	require.Equal(t, 1, all[0].Index)
	require.Equal(t, "Alice Pauline", all[0].Name)
	require.Equal(t, []string{"friends"}, all[0].Tags)
	require.Empty(t, all[0].PrivateFields)

	filtered := listPersons(t, h, "/v1/persons?keyword=meier")
	require.Len(t, filtered, 1)
	require.Equal(t, "Benson Meier", filtered[0].Name)
}

func TestTogglePrivacy_HidesFieldsInListing(t *testing.T) {
	h := newTestServer(t)

	body := `{"phone": true, "remark": true}`
	w := ut.PerformRequest(h.Engine, http.MethodPost, "/v1/persons/2/privacy", jsonBody(body), jsonHeader)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode(), string(resp.Body()))

	var out struct {
		Data dto.CommandResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &out))
	require.NotEmpty(t, out.Data.ExecutionID)
	require.Contains(t, out.Data.Feedback, "Changed the Privacy of the Person: Benson Meier")

	all := listPersons(t, h, "/v1/persons")
	require.Equal(t, "<Private Phone>", all[1].Phone)
	require.Equal(t, "<Private Remark>", all[1].Remark)
	require.Equal(t, "johnd@example.com", all[1].Email)
	require.ElementsMatch(t, []string{"phone", "remark"}, all[1].PrivateFields)

	// null 表示不修改，已私密的字段保持私密
	body = `{"phone": null, "email": true}`
	w = ut.PerformRequest(h.Engine, http.MethodPost, "/v1/persons/2/privacy", jsonBody(body), jsonHeader)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())

	all = listPersons(t, h, "/v1/persons")
	require.ElementsMatch(t, []string{"phone", "email", "remark"}, all[1].PrivateFields)
}

func TestTogglePrivacy_Errors(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		name string
		url  string
		body string
		code int
		want string
	}{
		{"index not a number", "/v1/persons/abc/privacy", `{"phone": true}`, http.StatusBadRequest, "INVALID_PERSON_DISPLAYED_INDEX"},
		{"index zero", "/v1/persons/0/privacy", `{"phone": true}`, http.StatusBadRequest, "INVALID_PERSON_DISPLAYED_INDEX"},
		{"index out of range", "/v1/persons/3/privacy", `{"phone": true}`, http.StatusBadRequest, "INVALID_PERSON_DISPLAYED_INDEX"},
		{"no field", "/v1/persons/1/privacy", `{}`, http.StatusBadRequest, "PRIVACY_EDIT_EMPTY"},
		{"malformed body", "/v1/persons/1/privacy", `{"phone": "yes"}`, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ut.PerformRequest(h.Engine, http.MethodPost, tc.url, jsonBody(tc.body), jsonHeader)
			resp := w.Result()
			require.Equal(t, tc.code, resp.StatusCode())
			require.Equal(t, tc.want, decodeError(t, resp.Body()).Code)
		})
	}

	// 失败的请求不改变任何联系人
	for _, p := range listPersons(t, h, "/v1/persons") {
		require.Empty(t, p.PrivateFields)
	}
}

func TestTogglePrivacy_IndexFollowsFilteredList(t *testing.T) {
	h := newTestServer(t)

	filtered := listPersons(t, h, "/v1/persons?keyword=benson")
	require.Len(t, filtered, 1)

	w := ut.PerformRequest(h.Engine, http.MethodPost, "/v1/persons/1/privacy", jsonBody(`{"address": true}`), jsonHeader)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())

	all := listPersons(t, h, "/v1/persons")
	require.Empty(t, all[0].PrivateFields)
	require.Equal(t, "<Private Address>", all[1].Address)
}

func TestAddPerson(t *testing.T) {
	h := newTestServer(t)

	body := `{"name": "Carl Kurz", "phone": "95352563", "email": "heinz@example.com", "address": "wall street", "tags": ["colleague"]}`
	w := ut.PerformRequest(h.Engine, http.MethodPost, "/v1/persons", jsonBody(body), jsonHeader)
	require.Equal(t, http.StatusCreated, w.Result().StatusCode())
	require.Len(t, listPersons(t, h, "/v1/persons"), 3)

	w = ut.PerformRequest(h.Engine, http.MethodPost, "/v1/persons", jsonBody(body), jsonHeader)
	resp := w.Result()
	require.Equal(t, http.StatusConflict, resp.StatusCode())
	require.Equal(t, "DUPLICATE_PERSON", decodeError(t, resp.Body()).Code)

	body = `{"name": "Daniel", "phone": "12", "email": "d@example.com", "address": "x"}`
	w = ut.PerformRequest(h.Engine, http.MethodPost, "/v1/persons", jsonBody(body), jsonHeader)
	resp = w.Result()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode())
	require.Equal(t, "INVALID_PHONE", decodeError(t, resp.Body()).Code)
}
