package menu

import (
	"context"
	"fmt"
)

func Run(ctx context.Context, m Menu, d *Deps) {
	cmds := BuildCommands(d)
	for {
		Draw(m)
		idx, err := ReadIndex(len(m.Items))
		if err != nil {
			fmt.Println("Invalid input")
			WaitEnter()
			fmt.Println()
			continue
		}

		item := m.Items[idx-1]
		key := item.Key

		if key == "exit" || key == "" {
			fmt.Println("Bye!")
			return
		}

		cmd, ok := cmds[key]
		if !ok {
			fmt.Println("Unknown command:", key)
			WaitEnter()
			fmt.Println()
			continue
		}

		if err := WithTiming(cmd).Run(ctx); err != nil {
			fmt.Println("Error:", err)
		}

		WaitEnter()
		fmt.Println()
	}
}
