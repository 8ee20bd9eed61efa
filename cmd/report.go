package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fiximg/internal/processor"
	"fiximg/internal/tui"
)

// runPipeline drives one full run: live progress while the processor
// works, then the per-file report and the summary table.
func runPipeline(dir string, mode processor.Mode) error {
	fmt.Fprintf(os.Stdout, "🚀 开始处理目录: %s\n", dir)
	fmt.Fprintln(os.Stdout, "正在检测和修复图片文件格式...")
	fmt.Fprintln(os.Stdout)

	updates := make(chan processor.ProgressUpdate, 64)
	model := tui.NewModel(updates)
	program := tea.NewProgram(model)

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	stats, outcomes, err := processor.Run(context.Background(), dir, processor.Options{Mode: mode}, updates)
	close(updates)
	<-uiDone
	if err != nil {
		return fmt.Errorf("处理目录失败: %s - %w", dir, err)
	}

	for _, out := range outcomes {
		fmt.Fprintln(os.Stdout, renderOutcome(out))
	}
	if len(outcomes) > 0 {
		fmt.Fprintln(os.Stdout)
	}

	rows := []tui.SummaryRow{
		{Label: "处理文件数", Value: fmt.Sprintf("%d", stats.Processed)},
		{Label: "重命名文件数", Value: fmt.Sprintf("%d", stats.Renamed)},
		{Label: "跳过文件数", Value: fmt.Sprintf("%d", stats.Skipped)},
		{Label: "错误文件数", Value: fmt.Sprintf("%d", stats.Errors)},
		{Label: "用时", Value: fmt.Sprintf("%.2f秒", stats.Elapsed.Seconds())},
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))
	if mode == processor.ModeScan {
		fmt.Fprintln(os.Stdout, "扫描完成，未修改任何文件。")
	}

	return nil
}

func renderOutcome(out processor.Outcome) string {
	switch out.Kind {
	case processor.EventRenamed:
		return successStyle.Render(fmt.Sprintf("✅ 已重命名: %s -> %s (%s -> %s)", out.Name, out.NewName, out.OldExt, out.NewExt))
	case processor.EventMismatch:
		return accentStyle.Render(fmt.Sprintf("🔍 需要重命名: %s (%s -> %s)", out.Name, out.OldExt, out.NewExt))
	case processor.EventUnknown:
		return warnStyle.Render(fmt.Sprintf("⚠️  无法检测格式: %s", out.Name))
	case processor.EventCollision:
		return warnStyle.Render(fmt.Sprintf("⚠️  目标文件已存在，跳过重命名: %s -> %s", out.Name, out.NewName))
	case processor.EventError:
		return errorStyle.Render(fmt.Sprintf("❌ 处理文件失败: %s - %v", out.Name, out.Err))
	default:
		return okStyle.Render(fmt.Sprintf("✓  格式正确: %s (%s)", out.Name, out.Format))
	}
}

var (
	successStyle = lipgloss.NewStyle().Foreground(tui.ColorSuccess)
	accentStyle  = lipgloss.NewStyle().Foreground(tui.ColorAccent)
	warnStyle    = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	errorStyle   = lipgloss.NewStyle().Foreground(tui.ColorError)
	okStyle      = lipgloss.NewStyle().Foreground(tui.ColorDim)
)
