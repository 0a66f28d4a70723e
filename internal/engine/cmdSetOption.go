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
	"github.com/kavu-chess/corvid/pkg/uci/cmd"
	"github.com/kavu-chess/corvid/pkg/uci/flag"
)

func newCmdSetOption(engine Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Single("name")
	schema.Variadic("value")

	return cmd.Command{
		Name: "setoption",
		Run: func(interaction cmd.Interaction) error {
			name := interaction.Values["name"].Value.(string)

			var value []string
			if v := interaction.Values["value"]; v.Set {
				value = v.Value.([]string)
			}

			return engine.options.SetOption(name, value)
		},
		Flags: schema,
	}
}
