package constant

import "project-composer-be/internal/entity"

// CatalogCategory is one ordered bucket of the read-only template catalog.
// The same template id may legally appear in more than one category.
type CatalogCategory struct {
	Name      string                   `json:"name"`
	Templates []entity.ProjectTemplate `json:"templates"`
}

// Catalog is the externally supplied, read-only template dataset. Consumed,
// never mutated: lookups copy before handing data to the workspace.
var Catalog = []CatalogCategory{
	{
		Name: "frontend",
		Templates: []entity.ProjectTemplate{
			{
				Id: "react", Name: "React.js", Icon: "⚛️", Structure: "my-react-app/",
				Tip: "React projects use bundlers like Vite or Webpack.",
				Boilerplate: map[string]string{
					"package.json": "{ \"name\": \"react-app\", \"dependencies\": { \"react\": \"^18.2.0\" } }",
					"src/App.jsx":  "import React from 'react';\n\nfunction App() { return <h1>Hello, React!</h1>; }",
				},
			},
			{
				Id: "vue", Name: "Vue.js", Icon: "🟢", Structure: "vue-project/",
				Tip: "In Vue, .vue files bundle HTML, CSS, and JavaScript together.",
				Boilerplate: map[string]string{
					"package.json": "{ \"name\": \"vue-app\", \"dependencies\": { \"vue\": \"^3.4.0\" } }",
					"src/App.vue":  "<template><h1>Hello, Vue!</h1></template>",
				},
			},
			{
				Id: "angular", Name: "Angular", Icon: "🅰️", Structure: "angular-app/",
				Tip: "Angular’s CLI generates a lot for you—use `ng generate component`.",
				Boilerplate: map[string]string{
					"package.json":             "{ \"name\": \"angular-app\", \"dependencies\": { \"@angular/core\": \"^17.0.0\" } }",
					"src/app/app.component.ts": "import { Component } from '@angular/core';\n\n@Component({ selector: 'app-root', template: '<h1>Hello, Angular!</h1>' })",
				},
			},
			{
				Id: "svelte", Name: "SvelteKit", Icon: "", Structure: "sveltekit-app/",
				Tip: "SvelteKit’s file-based routing means creating a file in src/routes/ automatically creates a page.",
				Boilerplate: map[string]string{
					"package.json":            "{ \"name\": \"svelte-app\", \"dependencies\": { \"svelte\": \"^4.0.0\" } }",
					"src/routes/+page.svelte": "<h1>Hello, Svelte!</h1>",
				},
			},
		},
	},
	{
		Name: "backend",
		Templates: []entity.ProjectTemplate{
			{
				Id: "express", Name: "Express.js", Icon: "🟢", Structure: "express-api/",
				Tip: "Think of routes as the \"addresses,\" controllers as the \"delivery people,\" and services as the \"kitchen.\"",
				Boilerplate: map[string]string{
					"package.json": "{ \"name\": \"express-api\", \"dependencies\": { \"express\": \"^4.18.2\" } }",
					"server.js":    "const express = require('express');\nconst app = express();\n\napp.get('/', (req, res) => res.send('Hello, Express!'));\n\napp.listen(3000);",
				},
			},
			{
				Id: "django", Name: "Django", Icon: "🐍", Structure: "django_project/",
				Tip: "Django uses \"apps\" as submodules—you can have multiple apps in one project.",
				Boilerplate: map[string]string{
					"requirements.txt": "Django==4.2.0",
					"manage.py":        "#!/usr/bin/env python\nimport os\nimport sys\n\nif __name__ == '__main__':\n\t...",
				},
			},
		},
	},
	{
		Name: "devops",
		Templates: []entity.ProjectTemplate{
			{
				Id: "docker", Name: "Docker & Kubernetes", Icon: "🐳", Structure: "my-app/",
				Tip: "Containerized apps use a Dockerfile to build an image, then deploy to Kubernetes.",
				Boilerplate: map[string]string{
					"Dockerfile":         "FROM node:18\nWORKDIR /usr/src/app\nCOPY package*.json ./\nRUN npm install\nCOPY . .\nCMD [\"npm\", \"start\"]",
					"docker-compose.yml": "version: '3.8'\nservices:\n\tweb:\n\t\tbuild: .",
				},
			},
			{
				Id: "terraform", Name: "Terraform", Icon: "🏗️", Structure: "terraform-infra/",
				Tip: "Terraform modules are like functions—write once, reuse across different environments.",
				Boilerplate: map[string]string{
					"main.tf": "resource \"aws_s3_bucket\" \"my_bucket\" { bucket = \"my-unique-bucket-name\" }",
				},
			},
		},
	},
	{
		Name: "databases",
		Templates: []entity.ProjectTemplate{
			{
				Id: "postgresql", Name: "PostgreSQL", Icon: "🐘", Structure: "db-project/",
				Tip: "Keep your database schema in version control with migrations.",
				Boilerplate: map[string]string{
					"docker-compose.yml":         "services:\n\tdb:\n\t\timage: postgres:15\n\t\t...",
					"migrations/001_initial.sql": "CREATE TABLE users ( id SERIAL PRIMARY KEY );",
				},
			},
			{
				Id: "mongodb", Name: "MongoDB", Icon: "🍃", Structure: "mongodb-project/",
				Tip: "MongoDB is schema-less by default, but using a schema definition can help enforce consistency.",
				Boilerplate: map[string]string{
					"docker-compose.yml": "services:\n\tmongo:\n\t\timage: mongo:6\n\t\t...",
					"scripts/seed.js":    "db.users.insertOne({ name: \"Alice\" });",
				},
			},
		},
	},
	{
		Name: "freehosters",
		Templates: []entity.ProjectTemplate{
			{
				Id: "netlify-react", Name: "React + Netlify", Icon: "⚛️☁️", Structure: "netlify-react-app/",
				Tip: "Netlify provides zero-config continuous deployment from Git.",
				Boilerplate: map[string]string{
					"netlify.toml": "[build]\n\tcommand = \"npm run build\"\n\tpublish = \"dist\"",
					"src/App.jsx":  "import React from 'react';\n\nfunction App() { return <h1>Hello, Netlify!</h1>; }",
				},
			},
			{
				Id: "vercel-nextjs", Name: "Next.js + Vercel", Icon: "⚡️☁️", Structure: "nextjs-vercel-app/",
				Tip: "Vercel is the creator of Next.js, making for a seamless deployment experience.",
				Boilerplate: map[string]string{
					"package.json":   "{ \"name\": \"nextjs-app\", \"dependencies\": { \"next\": \"^13.0.0\" } }",
					"pages/index.js": "function HomePage() { return <h1>Hello, Vercel!</h1>; }",
				},
			},
			{
				Id: "github-pages-html", Name: "HTML + GitHub Pages", Icon: "📄🐈", Structure: "github-pages-site/",
				Tip: "A simple, free way to host static HTML pages directly from your GitHub repo.",
				Boilerplate: map[string]string{
					"index.html": "<!DOCTYPE html><html><body><h1>Hello, GitHub Pages!</h1></body></html>",
				},
			},
		},
	},
	{
		Name: "cloud-infrastructure",
		Templates: []entity.ProjectTemplate{
			{
				Id: "aws-cdk", Name: "AWS CDK", Icon: "🪣", Structure: "my-cdk-app/",
				Tip: "The AWS Cloud Development Kit (CDK) allows you to define your cloud infrastructure in code.",
				Boilerplate: map[string]string{
					"package.json":    "{ \"name\": \"aws-cdk-app\", \"dependencies\": { \"aws-cdk\": \"^2.10.0\" } }",
					"lib/my-stack.ts": "import * as cdk from 'aws-cdk-lib';\nimport { Construct } from 'constructs';\n\nexport class MyStack extends cdk.Stack { constructor(scope: Construct, id: string, props?: cdk.StackProps) { super(scope, id, props); } }",
				},
			},
			{
				Id: "terraform-pulumi", Name: "Terraform & Pulumi", Icon: "🪣", Structure: "my-infra/",
				Tip: "Terraform and Pulumi are both Infrastructure as Code (IaC) tools used to manage cloud resources.",
				Boilerplate: map[string]string{
					"main.tf":     "resource \"aws_s3_bucket\" \"example\" { bucket = \"my-unique-bucket-name\" }",
					"Pulumi.yaml": "name: my-pulumi-project\nruntime: nodejs",
				},
			},
			{
				Id: "docker-only", Name: "Docker-only Project", Icon: "🐳", Structure: "my-docker-project/",
				Tip: "A lightweight Docker project for rapid prototyping and containerization.",
				Boilerplate: map[string]string{
					"Dockerfile": "FROM node:18\nWORKDIR /usr/src/app\nCOPY package*.json ./\nRUN npm install\nCOPY . .\nCMD [\"npm\", \"start\"]",
				},
			},
			{
				Id: "aws-serverless", Name: "AWS Serverless", Icon: "☁️", Structure: "my-serverless-app/",
				Tip: "A serverless API with AWS Lambda and API Gateway.",
				Boilerplate: map[string]string{
					"template.yaml":  "AWSTemplateFormatVersion: '2010-09-09'\nTransform: AWS::Serverless-2016-10-31\nResources:\n  MyApiFunction:\n    Type: AWS::Serverless::Function",
					"src/handler.js": "exports.handler = async (event) => { return { statusCode: 200, body: JSON.stringify('Hello from Lambda!') }; };",
				},
			},
		},
	},
	{
		Name: "emerging-tech",
		Templates: []entity.ProjectTemplate{
			{
				Id: "ai-ml", Name: "AI/ML Apps", Icon: "🤖", Structure: "my-ai-app/",
				Tip: "Use Hugging Face, LangChain, or RAG architectures for AI/ML projects.",
				Boilerplate: map[string]string{
					"requirements.txt": "langchain\nhuggingface_hub",
					"app.py":           "from langchain.llms import HuggingFaceHub\nllm = HuggingFaceHub(repo_id=\"google/flan-t5-xl\")\nprint(llm(\"What is the capital of France?\"))",
				},
			},
			{
				Id: "edge-computing", Name: "Edge Computing", Icon: "🌐", Structure: "my-edge-app/",
				Tip: "Cloudflare Workers and Deno Deploy are fast platforms for deploying functions at the edge.",
				Boilerplate: map[string]string{
					"index.js": "addEventListener('fetch', event => { event.respondWith(handleRequest(event.request)) });\n\nasync function handleRequest(request) { return new Response('Hello, Edge!', { status: 200 }) }",
				},
			},
			{
				Id: "wasm", Name: "Rust + WASM", Icon: "🦀", Structure: "my-wasm-app/",
				Tip: "Compile Rust to WebAssembly (WASM) for high-performance web applications.",
				Boilerplate: map[string]string{
					"Cargo.toml": "[package]\nname = \"my-wasm-app\"",
					"src/lib.rs": "#[no_mangle]\npub extern \"C\" fn greet() {\n  println!(\"Hello, WASM!\");\n}",
				},
			},
			{
				Id: "web3", Name: "Web3 / Blockchain", Icon: "🔗", Structure: "my-web3-app/",
				Tip: "A decentralized application (dapp) using smart contracts and a web3 library.",
				Boilerplate: map[string]string{
					"hardhat.config.js":        "require(\"@nomiclabs/hardhat-waffle\");\nmodule.exports = { solidity: \"0.8.4\", };",
					"contracts/MyContract.sol": "// SPDX-License-Identifier: MIT\npragma solidity ^0.8.4;\n\ncontract MyContract { string public greeting = \"Hello, Web3!\"; }",
				},
			},
		},
	},
	{
		Name: "team-enterprise",
		Templates: []entity.ProjectTemplate{
			{
				Id: "monorepo", Name: "Monorepo", Icon: "📦", Structure: "my-monorepo/",
				Tip: "Organize multiple projects in a single repository using tools like Nx or Turborepo.",
				Boilerplate: map[string]string{
					"nx.json":              "{ \"extends\": \"nx/presets/npm.json\" }",
					"apps/api/src/main.ts": "// API service",
					"apps/web/src/main.ts": "// Web app",
				},
			},
			{
				Id: "micro-frontends", Name: "Micro-Frontends", Icon: "🧩", Structure: "my-micro-frontend-app/",
				Tip: "Build a modular front-end architecture where independent teams can work on different parts of the application.",
				Boilerplate: map[string]string{
					"host-app/package.json":   "{ \"name\": \"host-app\", \"dependencies\": {} }",
					"remote-app/package.json": "{ \"name\": \"remote-app\", \"dependencies\": {} }",
				},
			},
			{
				Id: "orchestration", Name: "Multi-service Orchestration", Icon: "⚙️", Structure: "my-orchestration-app/",
				Tip: "Use tools like Docker Compose or Kubernetes to manage multiple interconnected services.",
				Boilerplate: map[string]string{
					"docker-compose.yml": "version: '3.8'\nservices:\n  service1:\n    build: ./service1\n  service2:\n    build: ./service2",
				},
			},
			{
				Id: "design-system", Name: "Design System", Icon: "🎨", Structure: "my-design-system/",
				Tip: "A central source of truth for design tokens and UI components, documented with Storybook.",
				Boilerplate: map[string]string{
					".storybook/main.js":        "module.exports = { stories: ['../src/**/*.stories.js'] }",
					"src/components/Button.jsx": "const Button = () => <button>Click me</button>;",
				},
			},
		},
	},
	{
		Name: "mobile-desktop",
		Templates: []entity.ProjectTemplate{
			{
				Id: "react-native", Name: "React Native", Icon: "📱", Structure: "my-rn-app/",
				Tip: "Build native mobile apps for iOS and Android using React.",
				Boilerplate: map[string]string{
					"package.json": "{ \"name\": \"react-native-app\", \"dependencies\": { \"react-native\": \"^0.72.0\" } }",
					"App.js":       "import { Text, View } from 'react-native';\nexport default function App() { return (<View><Text>Hello, Mobile!</Text></View>); }",
				},
			},
			{
				Id: "flutter", Name: "Flutter", Icon: "🐦", Structure: "my-flutter-app/",
				Tip: "Build natively compiled apps for mobile, web, and desktop from a single codebase.",
				Boilerplate: map[string]string{
					"pubspec.yaml":  "name: my_flutter_app\ndependencies:\n  flutter:\n    sdk: flutter",
					"lib/main.dart": "import 'package:flutter/material.dart';\nvoid main() => runApp(const MyApp());",
				},
			},
			{
				Id: "electron", Name: "Electron", Icon: "🖥️", Structure: "my-electron-app/",
				Tip: "Create cross-platform desktop applications with JavaScript, HTML, and CSS.",
				Boilerplate: map[string]string{
					"package.json": "{ \"name\": \"electron-app\", \"dependencies\": { \"electron\": \"^28.0.0\" } }",
					"main.js":      "const { app, BrowserWindow } = require('electron');\nconst createWindow = () => { new BrowserWindow(); };\napp.whenReady().then(() => { createWindow(); });",
				},
			},
			{
				Id: "tauri", Name: "Tauri", Icon: "🦀🖥️", Structure: "my-tauri-app/",
				Tip: "A Rust-based alternative to Electron for building smaller, more secure desktop apps.",
				Boilerplate: map[string]string{
					"src/main.rs": "fn main() { tauri::Builder::default().run(tauri::generate_context!()).expect(\"error while running tauri application\"); }",
				},
			},
		},
	},
}

// FindTemplate looks a template up by category and id. The returned template
// is a copy with its own boilerplate map.
func FindTemplate(category, id string) (entity.ProjectTemplate, bool) {
	for _, bucket := range Catalog {
		if bucket.Name != category {
			continue
		}
		for _, tpl := range bucket.Templates {
			if tpl.Id == id {
				return copyTemplate(tpl), true
			}
		}
	}
	return entity.ProjectTemplate{}, false
}

// FindTemplateAnyCategory scans all buckets in order and returns the first
// match. Ids duplicated across buckets resolve to the earliest bucket.
func FindTemplateAnyCategory(id string) (entity.ProjectTemplate, bool) {
	for _, bucket := range Catalog {
		for _, tpl := range bucket.Templates {
			if tpl.Id == id {
				return copyTemplate(tpl), true
			}
		}
	}
	return entity.ProjectTemplate{}, false
}

func copyTemplate(tpl entity.ProjectTemplate) entity.ProjectTemplate {
	boilerplate := make(map[string]string, len(tpl.Boilerplate))
	for path, content := range tpl.Boilerplate {
		boilerplate[path] = content
	}
	tpl.Boilerplate = boilerplate
	return tpl
}
