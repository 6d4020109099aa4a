package config

// ExampleConfig returns a configuration with example values for use with `mimeset init`
func ExampleConfig() *Config {
	return &Config{
		Uploader: UploaderConfig{
			Name:   "attachments",
			Prefix: "uploads",
		},
		ContentType: ContentTypeConfig{
			Override: false,
			Sniff:    true,
			Types: []TypeRule{
				{Extension: ".md", Type: "text/markdown"},
				{Extension: ".heic", Type: "image/heic"},
			},
		},
		Store: StoreConfig{
			S3: S3Config{
				Bucket: "env(MIMESET_S3_BUCKET)",
				Region: "eu-central-1",
				Credentials: S3Credentials{
					AccessKey: "env(AWS_ACCESS_KEY_ID)",
					SecretKey: "env(AWS_SECRET_ACCESS_KEY)",
				},
			},
		},
		Release: ReleaseConfig{
			GitHub: GitHubConfig{
				Owner: "your-org",
				Repo:  "your-repo",
				Tag:   "env(RELEASE_TAG)",
				Token: "env(GITHUB_TOKEN)",
			},
		},
	}
}
