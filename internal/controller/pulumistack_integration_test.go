/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/stackservice"
)

var _ = Describe("PulumiStackReconciler", func() {
	const operatorNamespace = "pulumi-system-it"
	const stackNamespace = "team-it"

	var (
		reconciler *PulumiStackReconciler
		stackName  string
	)

	BeforeEach(func(ctx SpecContext) {
		for _, ns := range []string{operatorNamespace, stackNamespace} {
			err := k8sClient.Create(ctx, &corev1.Namespace{
				ObjectMeta: metav1.ObjectMeta{Name: ns},
			})
			if err != nil && !apierrors.IsAlreadyExists(err) {
				Expect(err).NotTo(HaveOccurred())
			}
		}

		gw := k8sgateway.New(k8sClient)
		reconciler = &PulumiStackReconciler{
			Client:   k8sClient,
			Scheme:   k8sClient.Scheme(),
			Recorder: record.NewFakeRecorder(32),
			Gateway:  gw,
			Service:  stackservice.New(gw, operatorNamespace, "ghcr.io/acme/pulumi-worker:v1"),
		}
		stackName = "demo-it"
	})

	AfterEach(func(ctx SpecContext) {
		stack := &pulumiv1.PulumiStack{}
		if err := k8sClient.Get(ctx, types.NamespacedName{Namespace: stackNamespace, Name: stackName}, stack); err == nil {
			stack.Finalizers = nil
			_ = k8sClient.Update(ctx, stack)
			_ = k8sClient.Delete(ctx, stack)
		}
	})

	It("adds the finalizer and materializes the worker CronJob on first reconcile", func(ctx SpecContext) {
		stack := &pulumiv1.PulumiStack{
			ObjectMeta: metav1.ObjectMeta{Name: stackName, Namespace: stackNamespace},
			Spec: pulumiv1.PulumiStackSpec{
				Source: pulumiv1.SourceReference{Name: stackName, Type: pulumiv1.SourceKindGitStackSource},
				Auth:   pulumiv1.AuthReference{Name: stackName, Type: pulumiv1.AuthKindStackAuth},
			},
		}
		Expect(k8sClient.Create(ctx, stack)).To(Succeed())

		req := ctrl.Request{NamespacedName: types.NamespacedName{Namespace: stackNamespace, Name: stackName}}
		_, err := reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		got := &pulumiv1.PulumiStack{}
		Expect(k8sClient.Get(ctx, req.NamespacedName, got)).To(Succeed())
		Expect(k8sgateway.HasFinalizer(got, pulumiv1.Finalizer)).To(BeTrue())

		cj := &batchv1.CronJob{}
		Expect(k8sClient.Get(ctx, types.NamespacedName{
			Namespace: operatorNamespace,
			Name:      "pulumi-" + stackName,
		}, cj)).To(Succeed())
		Expect(cj.Spec.Schedule).To(Equal("* * * * *"))
	})

	It("removes the worker CronJob and finalizer once the stack is deleted", func(ctx SpecContext) {
		stack := &pulumiv1.PulumiStack{
			ObjectMeta: metav1.ObjectMeta{Name: stackName, Namespace: stackNamespace},
			Spec: pulumiv1.PulumiStackSpec{
				Source: pulumiv1.SourceReference{Name: stackName, Type: pulumiv1.SourceKindGitStackSource},
				Auth:   pulumiv1.AuthReference{Name: stackName, Type: pulumiv1.AuthKindStackAuth},
			},
		}
		Expect(k8sClient.Create(ctx, stack)).To(Succeed())

		req := ctrl.Request{NamespacedName: types.NamespacedName{Namespace: stackNamespace, Name: stackName}}
		_, err := reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		Expect(k8sClient.Delete(ctx, stack)).To(Succeed())

		_, err = reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		cj := &batchv1.CronJob{}
		err = k8sClient.Get(ctx, types.NamespacedName{Namespace: operatorNamespace, Name: "pulumi-" + stackName}, cj)
		Expect(err).To(HaveOccurred())

		leftover := &pulumiv1.PulumiStack{}
		err = k8sClient.Get(ctx, req.NamespacedName, leftover)
		Expect(err).To(HaveOccurred())
	})
})
