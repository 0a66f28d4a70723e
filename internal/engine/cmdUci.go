// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"github.com/kavu-chess/corvid/internal/build"
	"github.com/kavu-chess/corvid/pkg/uci/cmd"
)

func newCmdUci(engine Engine) cmd.Command {
	return cmd.Command{
		Name: "uci",
		Run: func(interaction cmd.Interaction) error {
			interaction.Replyf("id name Corvid %s", build.Version)
			interaction.Reply("id author kavu-chess")
			interaction.Reply(engine.options.String())
			interaction.Reply("uciok")
			return nil
		},
	}
}
