// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package integrations

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/dtos"
	"github.com/l3montree-dev/brandguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyAssetTransition(t *testing.T) {
	asset := models.Asset{Name: "Summer Campaign Banner"}
	transition := models.NewAssetTransition(asset.ID, dtos.AssetStatusPendingReview, dtos.AssetStatusUnderReview, dtos.TransitionStartReview, utils.Ptr("user-bob"))

	t.Run("should post the transition to the webhook", func(t *testing.T) {
		var body []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewSlackNotifier(server.URL)
		require.NoError(t, notifier.NotifyAssetTransition(asset, transition))

		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Contains(t, payload["text"], "Summer Campaign Banner")
		assert.Contains(t, payload["text"], "pendingReview")
		assert.Contains(t, payload["text"], "underReview")
		assert.Contains(t, payload["text"], "user-bob")
	})

	t.Run("should do nothing without a webhook url", func(t *testing.T) {
		notifier := NewSlackNotifier("")

		assert.NoError(t, notifier.NotifyAssetTransition(asset, transition))
	})

	t.Run("should surface non 2xx responses as errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		notifier := NewSlackNotifier(server.URL)

		assert.Error(t, notifier.NotifyAssetTransition(asset, transition))
	})

	t.Run("should fall back to system without a triggering user", func(t *testing.T) {
		var body []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		anonymous := models.NewAssetTransition(asset.ID, dtos.AssetStatusPendingReview, dtos.AssetStatusUnderReview, dtos.TransitionStartReview, nil)
		notifier := NewSlackNotifier(server.URL)
		require.NoError(t, notifier.NotifyAssetTransition(asset, anonymous))

		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Contains(t, payload["text"], "system")
	})
}
