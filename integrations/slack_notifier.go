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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package integrations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/l3montree-dev/brandguard/database/models"
	"github.com/l3montree-dev/brandguard/utils"
)

// SlackNotifier posts a short message to a slack incoming webhook after
// an asset changed state. An empty webhook URL disables it.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (notifier *SlackNotifier) NotifyAssetTransition(asset models.Asset, transition models.AssetStateTransition) error {
	if notifier.webhookURL == "" {
		return nil
	}

	payload := map[string]string{
		"text": fmt.Sprintf("Asset %s moved from %s to %s (%s, by %s)",
			asset.Name, transition.FromState, transition.ToState,
			transition.TransitionMethod, utils.OrDefault(transition.TriggeredBy, "system")),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := notifier.httpClient.Post(notifier.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}
