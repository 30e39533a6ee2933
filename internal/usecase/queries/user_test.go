//go:build unit

package queries_test

import (
	"context"
	"testing"

	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/usecase/queries"
	"solar-dispatch/tests/common/builder"
	queriesmock "solar-dispatch/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	active := builder.TeamUser().BuildReadModel()
	inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		err     error
		wantErr error
	}{
		{name: "active user", view: active},
		{name: "inactive user", view: inactive, wantErr: queries.ErrUserInactive},
		{name: "missing user", err: infra.WrapRepoErr("user not found", nil, infra.KindNotFound), wantErr: queries.ErrUserNotFound},
		{name: "store failure", err: errs.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			id := active.ID
			if tt.view != nil {
				id = tt.view.ID
			}
			store.EXPECT().FindByID(gomock.Any(), id).Return(tt.view, tt.err)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), id)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.err != nil:
				require.Error(t, err)
				assert.NotErrorIs(t, err, queries.ErrUserNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.view, got)
			}
		})
	}
}
