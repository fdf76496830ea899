package application_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"localebot/internal/application"
	"localebot/internal/domain/entities"
	"localebot/internal/ports/input"
)

type logRecord struct {
	Msg        string `json:"msg"`
	Number     int    `json:"number"`
	Scope      string `json:"scope"`
	Parameters string `json:"parameters"`
}

func records(t *testing.T, buf *bytes.Buffer) []logRecord {
	t.Helper()
	var out []logRecord
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var r logRecord
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		out = append(out, r)
	}
	return out
}

func TestVerboseTranslator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	v := application.NewVerbose(finnish(t), logger)

	require.True(t, v.Config().NoFallbacks)
	require.Equal(t, "Uusi ketju (#1)", v.Translate("topic.create"))
	require.Equal(t, "Uusi ketju (#1)", v.Translate("topic.create"))
	require.Equal(t, "Hei Ville (#2)", v.Translate("greeting", entities.WithParams(map[string]any{"name": "Ville"})))
	require.Equal(t, "[fi.topic.suggest] (#3)", v.Translate("topic.suggest"), "fallbacks are disabled")

	en := v.ForLocale("en")
	require.Equal(t, "New Topic (#1)", en.Translate("topic.create"))
	require.Equal(t, "Why not create a topic? (#3)", en.Translate("topic.suggest"))

	logged := records(t, &buf)
	require.Len(t, logged, 3)
	require.Equal(t, "Translation #1: topic.create", logged[0].Msg)
	require.Equal(t, 1, logged[0].Number)
	require.Empty(t, logged[0].Parameters)
	require.Equal(t, "Translation #2: greeting", logged[1].Msg)
	require.JSONEq(t, `{"name":"Ville"}`, logged[1].Parameters)
	require.Equal(t, "topic.suggest", logged[2].Scope)
}

func TestVerboseTranslatorLogsCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := application.NewVerbose(finnish(t), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.Equal(t, "3 vastausta (#1)", v.Translate("replies", entities.WithCount(3)))

	logged := records(t, &buf)
	require.Len(t, logged, 1)
	require.JSONEq(t, `{"count":3}`, logged[0].Parameters)
}

func TestVerboseHumanSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := application.NewVerbose(finnish(t), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.Equal(t, "1,5 kt (#1)", v.ToHumanSize(1536))
	require.Equal(t, "2 tavua (#2)", v.ToHumanSize(2))
	require.Equal(t, "1,5kt (#1)", v.ToHumanSizeWith(1536, application.WithFormat("%n%u")))

	var tr input.TranslationUseCase = v
	require.Equal(t, "3 kt (#1)", tr.ToHumanSize(3072))

	logged := records(t, &buf)
	require.Len(t, logged, 2)
	require.Equal(t, "number.human.storage_units.units.kb", logged[0].Scope)
	require.Equal(t, "number.human.storage_units.units.byte", logged[1].Scope)
	require.JSONEq(t, `{"count":2}`, logged[1].Parameters)
}

func TestVerboseLeavesBaseUntouched(t *testing.T) {
	t.Parallel()

	base := finnish(t)
	_ = application.NewVerbose(base, nil)

	require.False(t, base.Config().NoFallbacks)
	require.Equal(t, "Why not create a topic?", base.Translate("topic.suggest"))
}
