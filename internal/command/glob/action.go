package glob

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/config"
	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/globre"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	pattern := cmd.Args().First()
	if pattern == "" {
		return errors.New("missing pattern argument")
	}

	fmt.Println(globre.Translate(pattern, cfg.Glob.Greedy))

	// 额外的参数作为候选串逐一匹配
	candidates := cmd.Args().Slice()[1:]
	if len(candidates) == 0 {
		return nil
	}

	re, err := globre.Compile(pattern, cfg.Glob.Greedy)
	if err != nil {
		return fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	for _, candidate := range candidates {
		fmt.Printf("%s\t%v\n", candidate, re.MatchString(candidate))
	}

	return nil
}
