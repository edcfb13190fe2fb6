package youtube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ythttp "ytresolve/http"
)

func TestRequestErrorKindString(t *testing.T) {
	tests := []struct {
		kind RequestErrorKind
		want string
	}{
		{KindNotFound, "not found"},
		{KindOther, "other"},
		{KindResponseNotParsed, "response not parsed"},
		{KindHTTP, "http"},
		{RequestErrorKind(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestRequestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "not found",
			err:  notFound("no channel named x"),
			want: "youtube: resource not found: no channel named x",
		},
		{
			name: "client error status",
			err:  &RequestError{Kind: KindHTTP, StatusCode: 404, Err: &ythttp.HTTPError{StatusCode: 404}},
			want: "youtube: http failure: status 404 (client error): http error: status 404",
		},
		{
			name: "server error status",
			err:  &RequestError{Kind: KindHTTP, StatusCode: 503},
			want: "youtube: http failure: status 503 (server error)",
		},
		{
			name: "parse failure with cause",
			err:  notParsed("decode body", errors.New("unexpected end of JSON input")),
			want: "youtube: response not parsed: decode body: unexpected end of JSON input",
		},
		{
			name: "invalid",
			err:  invalid("channel name is empty"),
			want: "youtube: invalid request: channel name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestRequestErrorIs(t *testing.T) {
	sentinels := map[RequestErrorKind]error{
		KindNotFound:          ErrNotFound,
		KindOther:             ErrInvalidRequest,
		KindResponseNotParsed: ErrResponseNotParsed,
		KindHTTP:              ErrHTTP,
	}

	for kind, want := range sentinels {
		err := &RequestError{Kind: kind}
		for _, other := range sentinels {
			if other == want {
				assert.ErrorIs(t, err, other)
			} else {
				assert.NotErrorIs(t, err, other)
			}
		}
	}
}

func TestDomainErrorsWrap(t *testing.T) {
	cause := notFound("nothing")

	chErr := &ChannelError{Msg: MsgChannelVideos, Err: cause}
	assert.Equal(t, MsgChannelVideos, chErr.Error())
	assert.ErrorIs(t, chErr, ErrNotFound)

	var reqErr *RequestError
	assert.ErrorAs(t, chErr, &reqErr)
	assert.Same(t, cause, reqErr)

	vErr := &VideoError{Msg: MsgVideo, Err: cause}
	assert.Equal(t, MsgVideo, vErr.Error())
	assert.ErrorIs(t, vErr, ErrNotFound)
	assert.Same(t, cause, errors.Unwrap(vErr))
}
