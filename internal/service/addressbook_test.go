package service_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"addressbook/internal/command"
	"addressbook/internal/model/dto"
	"addressbook/internal/repository"
	"addressbook/internal/service"
	pkgerrors "addressbook/pkg/errors"
	"addressbook/pkg/snowflake"
)

func TestMain(m *testing.M) {
	if err := snowflake.Init(1, 1); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newService(t *testing.T) *service.AddressBookService {
	t.Helper()

	book, err := repository.NewAddressBook()
	require.NoError(t, err)
	svc := service.NewAddressBookService(book)

	ctx := context.Background()
	_, err = svc.AddPerson(ctx, dto.AddPersonRequest{
		Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com",
		Address: "123 Jurong West Ave 6", Tags: []string{"friends"},
	})
	require.NoError(t, err)
	_, err = svc.AddPerson(ctx, dto.AddPersonRequest{
		Name: "Benson Meier", Phone: "98765432", Email: "johnd@example.com",
		Address: "311 Clementi Ave 2", Remark: "owes money", TeamName: "Bravo",
	})
	require.NoError(t, err)

	return svc
}

func TestAddPerson_ValidationAndDuplicate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.AddPerson(ctx, dto.AddPersonRequest{
		Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com",
		Address: "123 Jurong West Ave 6", Tags: []string{"friends"},
	})
	require.ErrorIs(t, err, pkgerrors.DuplicatePerson)

	_, err = svc.AddPerson(ctx, dto.AddPersonRequest{
		Name: "Carl", Phone: "1", Email: "carl@example.com", Address: "Wall Street",
	})
	require.ErrorIs(t, err, pkgerrors.InvalidPhone)

	_, err = svc.AddPerson(ctx, dto.AddPersonRequest{
		Name: "Carl", Phone: "95352563", Email: "carl@example.com", Address: "Wall Street",
		Tags: []string{"not valid"},
	})
	require.ErrorIs(t, err, pkgerrors.InvalidTag)

	require.Len(t, svc.ListPersons(ctx, nil), 2)
}

func TestTogglePrivacy_UsesDisplayedIndex(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	shown := svc.ListPersons(ctx, []string{"benson"})
	require.Len(t, shown, 1)

	var edit command.PrivacyEdit
	edit.SetPrivateRemark(true)

	execID, result, err := svc.TogglePrivacy(ctx, 1, edit)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(execID, "exec_"))
	require.Contains(t, result.Feedback, "Benson Meier")
	require.Contains(t, result.Feedback, "<Private Remark>")

	// 成功后展示列表恢复为全部
	all := svc.ListPersons(ctx, nil)
	require.Len(t, all, 2)
	require.False(t, all[0].Remark().IsPrivate())
	require.True(t, all[1].Remark().IsPrivate())
	require.Equal(t, "owes money", all[1].Remark().Value())
}

func TestTogglePrivacy_Errors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var edit command.PrivacyEdit
	edit.SetPrivatePhone(true)

	_, _, err := svc.TogglePrivacy(ctx, 0, edit)
	require.ErrorIs(t, err, pkgerrors.InvalidPersonDisplayedIndex)

	_, _, err = svc.TogglePrivacy(ctx, 3, edit)
	require.ErrorIs(t, err, pkgerrors.InvalidPersonDisplayedIndex)

	_, _, err = svc.TogglePrivacy(ctx, 1, command.PrivacyEdit{})
	require.ErrorIs(t, err, pkgerrors.PrivacyEditEmpty)

	for _, p := range svc.ListPersons(ctx, nil) {
		require.False(t, p.Phone().IsPrivate())
	}
}

func TestAddressBookSingleton(t *testing.T) {
	require.Same(t, service.AddressBook(), service.AddressBook())
}
