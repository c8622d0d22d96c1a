package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/twilight/weaver/internal/application/port/mocks"
	"github.com/twilight/weaver/internal/domain/router"
)

func newTestNavigate() *NavigateUseCase {
	return NewNavigateUseCase(router.New(""), func() router.PageContext {
		return router.PageContext{DarkMode: true, Version: "1.0", AppName: "Weaver"}
	})
}

func TestNavigate_ExternalLoadsURI(t *testing.T) {
	ctx := context.Background()
	view := portmocks.NewMockNavigableView(t)
	view.EXPECT().LoadURI(mock.Anything, "http://example.com").Return(nil).Once()

	out, err := newTestNavigate().Execute(ctx, NavigateInput{Address: "example.com", View: view})
	require.NoError(t, err)
	assert.Equal(t, router.KindExternal, out.Disposition.Kind)
}

func TestNavigate_SearchLoadsQueryURL(t *testing.T) {
	ctx := context.Background()
	view := portmocks.NewMockNavigableView(t)
	view.EXPECT().LoadURI(mock.Anything, "https://www.duckduckgo.com/?q=hello+world").Return(nil).Once()

	out, err := newTestNavigate().Execute(ctx, NavigateInput{Address: "hello world", View: view})
	require.NoError(t, err)
	assert.Equal(t, router.KindSearch, out.Disposition.Kind)
}

func TestNavigate_InternalLoadsRenderedPage(t *testing.T) {
	ctx := context.Background()
	view := portmocks.NewMockNavigableView(t)
	view.EXPECT().LoadHTML(mock.Anything, mock.MatchedBy(func(html string) bool {
		return strings.Contains(html, "Weaver") && strings.Contains(html, "1.0") && strings.Contains(html, "#1e1e1e")
	}), "weaver://about").Return(nil).Once()

	out, err := newTestNavigate().Execute(ctx, NavigateInput{Address: "weaver://about", View: view})
	require.NoError(t, err)
	assert.Equal(t, router.PageAbout, out.Disposition.PageID)
}

func TestNavigate_BlankLoadsEmptyDocument(t *testing.T) {
	ctx := context.Background()
	view := portmocks.NewMockNavigableView(t)
	view.EXPECT().LoadHTML(mock.Anything, "", "about:blank").Return(nil).Once()

	_, err := newTestNavigate().Execute(ctx, NavigateInput{Address: "about:blank", View: view})
	require.NoError(t, err)
}

func TestNavigate_ViewErrorPropagates(t *testing.T) {
	ctx := context.Background()
	view := portmocks.NewMockNavigableView(t)
	boom := errors.New("engine gone")
	view.EXPECT().LoadURI(mock.Anything, mock.Anything).Return(boom).Once()

	_, err := newTestNavigate().Execute(ctx, NavigateInput{Address: "example.com", View: view})
	assert.ErrorIs(t, err, boom)
}

func TestNavigate_NoView(t *testing.T) {
	_, err := newTestNavigate().Execute(context.Background(), NavigateInput{Address: "example.com"})
	assert.ErrorIs(t, err, ErrNoView)
}

func TestNavigate_BackForwardRespectCapabilities(t *testing.T) {
	ctx := context.Background()
	uc := newTestNavigate()

	view := portmocks.NewMockNavigableView(t)
	view.EXPECT().CanGoBack().Return(false).Once()
	view.EXPECT().CanGoForward().Return(false).Once()

	assert.ErrorIs(t, uc.GoBack(ctx, view), ErrCannotGoBack)
	assert.ErrorIs(t, uc.GoForward(ctx, view), ErrCannotGoForward)

	view.EXPECT().CanGoBack().Return(true).Once()
	view.EXPECT().GoBack(mock.Anything).Return(nil).Once()
	view.EXPECT().CanGoForward().Return(true).Once()
	view.EXPECT().GoForward(mock.Anything).Return(nil).Once()

	assert.NoError(t, uc.GoBack(ctx, view))
	assert.NoError(t, uc.GoForward(ctx, view))
}

func TestNavigate_Reload(t *testing.T) {
	ctx := context.Background()
	view := portmocks.NewMockNavigableView(t)
	view.EXPECT().URI().Return("https://example.com").Once()
	view.EXPECT().Reload(mock.Anything).Return(nil).Once()

	assert.NoError(t, newTestNavigate().Reload(ctx, view))
	assert.ErrorIs(t, newTestNavigate().Reload(ctx, nil), ErrNoView)
}
