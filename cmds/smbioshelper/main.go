package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/config"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbioshelper"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/visitors"
)

var (
	version    = "dev"
	commitHash = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smbioshelper [标志] [操作 [参数]]...",
	Short: "解码SMBIOS入口点和结构表",
	Long: `smbioshelper 读取SMBIOS入口点和结构表(默认来自sysfs)，
并按顺序执行给出的操作。没有操作时打印所有结构。

操作:
` + visitors.ListCLI(),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "打印版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smbioshelper %s (commit: %s)\n", version, commitHash)
	},
}

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "列出可用的操作",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(visitors.ListCLI())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件")
	rootCmd.Flags().String("entry-point", "", "入口点文件 (默认 "+config.DefaultEntryPoint+")")
	rootCmd.Flags().String("table", "", "结构表文件或目录 (默认 "+config.DefaultTable+")")
	rootCmd.Flags().String("log-level", "", "日志级别 (默认 info)")
	rootCmd.Flags().BoolVar(&visitors.ExtractForce, "force", false, "强制提取到非空目录")
	rootCmd.Flags().BoolVar(&visitors.ExtractRemove, "remove", false, "提取前删除现有目录")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(operationsCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// 命令行标志优先
	if v, _ := cmd.Flags().GetString("entry-point"); v != "" {
		cfg.EntryPoint = v
	}
	if v, _ := cmd.Flags().GetString("table"); v != "" {
		cfg.Table = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("日志级别 %q: %w", cfg.LogLevel, err)
	}

	return smbioshelper.Run(cfg, args...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
